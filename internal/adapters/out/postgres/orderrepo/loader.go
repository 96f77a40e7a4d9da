package orderrepo

import (
	"context"
	"errors"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderDataLoader reads the addresses of a stored order for the label
// flow. It only reads, so it does not join a unit of work.
type GormOrderDataLoader struct {
	db *gorm.DB
}

func NewGormOrderDataLoader(db *gorm.DB) *GormOrderDataLoader {
	return &GormOrderDataLoader{db: db}
}

// Load returns the origin and shipping addresses of orderID.
func (l *GormOrderDataLoader) Load(ctx context.Context, orderID string) (kernel.Address, kernel.Address, error) {
	if orderID == "" {
		return kernel.Address{}, kernel.Address{}, errs.NewValueIsRequiredError("orderID")
	}

	var dto OrderDTO
	err := l.db.WithContext(ctx).
		Select("id", "origin_name", "origin_company", "origin_phone", "origin_street1", "origin_street2",
			"origin_city", "origin_region", "origin_postal_code", "origin_country",
			"shipping_name", "shipping_company", "shipping_phone", "shipping_street1", "shipping_street2",
			"shipping_city", "shipping_region", "shipping_postal_code", "shipping_country").
		First(&dto, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Address{}, kernel.Address{}, errs.NewObjectNotFoundError("order", orderID)
		}
		return kernel.Address{}, kernel.Address{}, err
	}

	origin, err := dto.Origin.toDomain()
	if err != nil {
		return kernel.Address{}, kernel.Address{}, errs.NewValueIsInvalidErrorWithCause("origin", err)
	}

	shipping, err := dto.Shipping.toDomain()
	if err != nil {
		return kernel.Address{}, kernel.Address{}, errs.NewValueIsInvalidErrorWithCause("shipping", err)
	}

	return origin, shipping, nil
}
