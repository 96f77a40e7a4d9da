// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Both addresses of an order are flattened into the orders table with
// origin_ and shipping_ column prefixes.
package orderrepo

import (
	"time"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID        string     `gorm:"type:varchar(64);primaryKey"`
	Origin    AddressDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Shipping  AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	Status    string     `gorm:"type:varchar(16);index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is one embedded postal address.
type AddressDTO struct {
	Name       string `gorm:"type:varchar(100)"`
	Company    string `gorm:"type:varchar(100)"`
	Phone      string `gorm:"type:varchar(100)"`
	Street1    string `gorm:"type:varchar(100)"`
	Street2    string `gorm:"type:varchar(100)"`
	City       string `gorm:"type:varchar(100)"`
	Region     string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(100)"`
	Country    string `gorm:"type:varchar(100)"`
}

func addressFromDomain(a kernel.Address) AddressDTO {
	f := a.Fields()
	return AddressDTO{
		Name:       f.Name,
		Company:    f.Company,
		Phone:      f.Phone,
		Street1:    f.Street1,
		Street2:    f.Street2,
		City:       f.City,
		Region:     f.Region,
		PostalCode: f.PostalCode,
		Country:    f.Country,
	}
}

func (d AddressDTO) toDomain() (kernel.Address, error) {
	return kernel.NewAddress(kernel.AddressFields{
		Name:       d.Name,
		Company:    d.Company,
		Phone:      d.Phone,
		Street1:    d.Street1,
		Street2:    d.Street2,
		City:       d.City,
		Region:     d.Region,
		PostalCode: d.PostalCode,
		Country:    d.Country,
	})
}

// fromDomain converts an order aggregate to its database representation.
// Timestamps are left to gorm.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:       o.ID(),
		Origin:   addressFromDomain(o.Origin()),
		Shipping: addressFromDomain(o.Shipping()),
		Status:   o.Status().String(),
	}
}

// toDomain rebuilds the aggregate with RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	origin, err := dto.Origin.toDomain()
	if err != nil {
		return nil, err
	}

	shipping, err := dto.Shipping.toDomain()
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, origin, shipping, status)
}
