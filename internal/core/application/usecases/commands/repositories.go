// Package commands holds the write operations of the service. Every command
// is built through a constructor, validated by its handler and, when it
// touches storage, runs inside a unit of work.
package commands

import (
	"context"
	"time"

	"shippinglabel/internal/core/application/labelsession"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

type (
	// SessionOpener starts label flows.
	SessionOpener interface {
		Open(orderID string) (*labelsession.Session, error)
	}

	// SessionFinder looks up running label flows.
	SessionFinder interface {
		Get(id kernel.UUID) (*labelsession.Session, error)
	}

	// SessionCloser ends label flows.
	SessionCloser interface {
		Close(id kernel.UUID) error
	}

	// SessionReaper evicts inactive label flows.
	SessionReaper interface {
		Reap(idle time.Duration) int
	}
)
