// Package ports declares the contracts between the core and its adapters:
// order storage, the order data loader and the address validator.
package ports

import (
	"context"

	"shippinglabel/internal/core/domain/model/order"
)

// OrderRepository stores Order aggregates.
type OrderRepository interface {
	// Add persists a new order. Adding an id that already exists fails.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with id or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAllPending returns every order without a label, oldest first.
	GetAllPending(ctx context.Context) ([]*order.Order, error)
}
