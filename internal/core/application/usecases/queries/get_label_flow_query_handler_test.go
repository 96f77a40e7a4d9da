package queries_test

import (
	"context"
	"testing"

	"shippinglabel/internal/core/application/labelsession"
	"shippinglabel/internal/core/application/usecases/queries"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/ports"
	"shippinglabel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingLoader never answers until the session context ends, so the
// flow stays in LoadingData for the duration of a test.
type blockingLoader struct{}

func (blockingLoader) Load(ctx context.Context, _ string) (kernel.Address, kernel.Address, error) {
	<-ctx.Done()
	return kernel.Address{}, kernel.Address{}, ctx.Err()
}

type noValidator struct{}

func (noValidator) Validate(context.Context, kernel.Address) (ports.ValidationResult, error) {
	return ports.ValidationResult{}, nil
}

func TestGetLabelFlowQueryHandler(t *testing.T) {
	registry := labelsession.NewRegistry(blockingLoader{}, noValidator{})
	t.Cleanup(registry.CloseAll)
	handler := queries.NewGetLabelFlowQueryHandler(registry)

	t.Run("should return the session snapshot", func(t *testing.T) {
		s, err := registry.Open("1042")
		require.NoError(t, err)
		query, err := queries.NewGetLabelFlowQuery(s.ID())
		require.NoError(t, err)

		first, err := handler.Handle(context.Background(), query)
		require.NoError(t, err)
		second, err := handler.Handle(context.Background(), query)
		require.NoError(t, err)

		assert.Equal(t, s.ID(), first.ID)
		assert.Equal(t, "1042", first.OrderID)
		assert.Equal(t, first, second)
	})

	t.Run("should report an unknown session as not found", func(t *testing.T) {
		query, err := queries.NewGetLabelFlowQuery(kernel.NewUUID())
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), query)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject an unconstructed query", func(t *testing.T) {
		_, err := handler.Handle(context.Background(), queries.GetLabelFlowQuery{})
		assert.ErrorIs(t, err, queries.ErrGetLabelFlowQueryIsNotConstructed)
	})
}
