package ports

import (
	"context"

	"shippinglabel/internal/core/domain/model/kernel"
)

// OrderDataLoader fetches the addresses a label flow starts from. Any error
// makes the flow enter DataLoadingFailure.
type OrderDataLoader interface {
	Load(ctx context.Context, orderID string) (origin, shipping kernel.Address, err error)
}
