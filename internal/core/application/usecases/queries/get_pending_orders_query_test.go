package queries_test

import (
	"testing"

	"shippinglabel/internal/core/application/usecases/queries"
	"shippinglabel/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPendingOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetPendingOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetPendingOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingOrdersQueryIsNotConstructed)
}

func TestNewGetLabelFlowQuery(t *testing.T) {
	t.Run("should keep the session id", func(t *testing.T) {
		id := kernel.NewUUID()
		query, err := queries.NewGetLabelFlowQuery(id)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, id, query.SessionID())
	})

	t.Run("should reject a zero session id", func(t *testing.T) {
		_, err := queries.NewGetLabelFlowQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("should reject a zero-value query", func(t *testing.T) {
		assert.ErrorIs(t, queries.GetLabelFlowQuery{}.Validate(), queries.ErrGetLabelFlowQueryIsNotConstructed)
	})
}
