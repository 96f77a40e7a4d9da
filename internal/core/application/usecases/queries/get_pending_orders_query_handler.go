package queries

import (
	"context"
	"time"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler reads pending orders straight from the
// orders table, oldest first.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			origin_name, origin_company, origin_phone, origin_street1, origin_street2,
			origin_city, origin_region, origin_postal_code, origin_country,
			shipping_name, shipping_company, shipping_phone, shipping_street1, shipping_street2,
			shipping_city, shipping_region, shipping_postal_code, shipping_country,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at, id
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetPendingOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id        string
			o, s      kernel.AddressFields
			createdAt time.Time
		)
		err = rows.Scan(
			&id,
			&o.Name, &o.Company, &o.Phone, &o.Street1, &o.Street2,
			&o.City, &o.Region, &o.PostalCode, &o.Country,
			&s.Name, &s.Company, &s.Phone, &s.Street1, &s.Street2,
			&s.City, &s.Region, &s.PostalCode, &s.Country,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		originAddr, err := kernel.NewAddress(o)
		if err != nil {
			return nil, err
		}
		shippingAddr, err := kernel.NewAddress(s)
		if err != nil {
			return nil, err
		}

		orders = append(orders, GetPendingOrdersQueryResponse{
			ID:        id,
			Origin:    originAddr,
			Shipping:  shippingAddr,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
