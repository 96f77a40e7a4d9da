package order_test

import (
	"testing"

	"shippinglabel/internal/core/domain/model/order"
	"shippinglabel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Pending))
	assert.Equal(t, 2, int(order.Labeled))
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept valid statuses", func(t *testing.T) {
		require.NoError(t, order.Pending.Validate())
		require.NoError(t, order.Labeled.Validate())
	})

	t.Run("should reject Unknown and out of range values", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(42), order.Status(-1)} {
			err := s.Validate()

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "is not a valid status")
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Labeled", order.Labeled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid statuses", func(t *testing.T) {
		s, err := order.StatusFromString("Labeled")

		require.NoError(t, err)
		assert.Equal(t, order.Labeled, s)
	})

	t.Run("should reject Unknown", func(t *testing.T) {
		_, err := order.StatusFromString("Unknown")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_MarkLabeled(t *testing.T) {
	t.Run("should move Pending to Labeled", func(t *testing.T) {
		next, err := order.Pending.MarkLabeled()

		require.NoError(t, err)
		assert.Equal(t, order.Labeled, next)
	})

	t.Run("should reject other statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Labeled} {
			_, err := s.MarkLabeled()

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}
