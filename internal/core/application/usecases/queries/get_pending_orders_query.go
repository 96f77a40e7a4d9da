package queries

import (
	"errors"
	"time"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery lists orders that have no label yet.
//
// Example:
//
//	query := NewGetPendingOrdersQuery()
//	orders, err := NewGetPendingOrdersQueryHandler(db).Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Printf("%s ships to %s\n", o.ID, o.Shipping)
//	}
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse is one pending order.
type GetPendingOrdersQueryResponse struct {
	ID        string
	Origin    kernel.Address
	Shipping  kernel.Address
	CreatedAt time.Time
}
