package http

import (
	"testing"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectFromDomain(t *testing.T) {
	entered := kernel.MustNewAddress(kernel.AddressFields{Street1: "5 elm street", City: "Portland", Country: "US"})
	suggested := kernel.MustNewAddress(kernel.AddressFields{Street1: "5 elm St", City: "Portland", Country: "US"})

	t.Run("should carry both addresses of a suggestion", func(t *testing.T) {
		out := effectFromDomain(labelflow.ShowAddressSuggestion{Entered: entered, Suggested: suggested})

		assert.Equal(t, labelflow.EffectShowAddressSuggestion, out.Type)
		require.NotNil(t, out.Entered)
		require.NotNil(t, out.Suggested)
		assert.Equal(t, "5 elm street", out.Entered.Street1)
		assert.Equal(t, "5 elm St", out.Suggested.Street1)
		assert.Nil(t, out.Address)
	})

	t.Run("should render the error of ShowError", func(t *testing.T) {
		out := effectFromDomain(labelflow.ShowError{Err: labelflow.ErrDataLoading})

		assert.Equal(t, labelflow.ErrDataLoading.Error(), out.Error)
	})

	t.Run("should treat a missing effect as NoOp", func(t *testing.T) {
		assert.Equal(t, Effect{Type: labelflow.EffectNoOp}, effectFromDomain(nil))
	})

	t.Run("should name completed steps", func(t *testing.T) {
		out := effectFromDomain(labelflow.UpdateViewState{
			Data: labelflow.NewData(entered, suggested, labelflow.StepOriginAddress, labelflow.StepPackaging),
		})

		require.NotNil(t, out.Data)
		assert.Equal(t, []string{"ORIGIN_ADDRESS", "PACKAGING"}, out.Data.StepsDone)
	})
}

func TestDecodeEvent(t *testing.T) {
	t.Run("should decode a signal", func(t *testing.T) {
		event, err := decodeEvent([]byte(`{"type": "CustomsFormFilledOut", "address": {"country": "US"}}`))

		require.NoError(t, err)
		assert.Equal(t, labelflow.CustomsFormFilledOut{}, event)
	})

	t.Run("should decode an address event", func(t *testing.T) {
		event, err := decodeEvent([]byte(`{"type": "SuggestedAddressSelected", "address": {"city": " Berlin ", "country": "DE"}}`))

		require.NoError(t, err)
		selected, ok := event.(labelflow.SuggestedAddressSelected)
		require.True(t, ok)
		assert.Equal(t, "Berlin", selected.Address.City())
	})

	t.Run("should only accept client events", func(t *testing.T) {
		for _, kind := range labelflow.AllEventKinds {
			_, err := decodeEvent([]byte(`{"type": "` + string(kind) + `", "address": {"country": "US"}}`))
			if clientEvents[kind] {
				assert.NoError(t, err, kind)
			} else {
				assert.Error(t, err, kind)
			}
		}
	})
}
