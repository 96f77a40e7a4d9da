package labelflow

import (
	"testing"

	"shippinglabel/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAddress(city string) kernel.Address {
	return kernel.MustNewAddress(kernel.AddressFields{Street1: "1 Main St", City: city, Country: "US"})
}

func sampleState(t *testing.T, kind StateKind) State {
	t.Helper()
	d := NewData(sampleAddress("Boston"), sampleAddress("Denver"), StepOriginAddress)
	switch kind {
	case KindIdle:
		return Idle{}
	case KindDataLoading:
		return DataLoading{}
	case KindDataLoadingFailure:
		return DataLoadingFailure{}
	case KindWaitingForUser:
		return WaitingForUser{Data: d}
	case KindOriginAddressValidation:
		return OriginAddressValidation{Data: d}
	case KindOriginAddressSuggestion:
		return OriginAddressSuggestion{Data: d}
	case KindOriginAddressEditing:
		return OriginAddressEditing{Data: d}
	case KindShippingAddressValidation:
		return ShippingAddressValidation{Data: d}
	case KindShippingAddressSuggestion:
		return ShippingAddressSuggestion{Data: d}
	case KindShippingAddressEditing:
		return ShippingAddressEditing{Data: d}
	case KindPackageSelection:
		return PackageSelection{Data: d}
	case KindCustomsDeclaration:
		return CustomsDeclaration{Data: d}
	case KindShippingCarrierSelection:
		return ShippingCarrierSelection{Data: d}
	case KindPaymentSelection:
		return PaymentSelection{Data: d}
	}
	t.Fatalf("no sample for state %s", kind)
	return nil
}

func sampleEvent(t *testing.T, kind EventKind) Event {
	t.Helper()
	if e, ok := NewSignal(kind); ok {
		return e
	}
	if e, ok := NewAddressEvent(kind, sampleAddress("Austin")); ok {
		return e
	}
	switch kind {
	case EventFlowStarted:
		return FlowStarted{OrderID: "1042"}
	case EventDataLoaded:
		return DataLoaded{Origin: sampleAddress("Boston"), Shipping: sampleAddress("Denver")}
	}
	t.Fatalf("no sample for event %s", kind)
	return nil
}

func TestTransitionTable(t *testing.T) {
	t.Run("should declare 33 transitions", func(t *testing.T) {
		rows := 0
		for _, events := range defaultTable {
			rows += len(events)
		}
		assert.Equal(t, 33, rows)
	})

	t.Run("should only reference known states and events", func(t *testing.T) {
		states := map[StateKind]bool{}
		for _, k := range AllStateKinds {
			states[k] = true
		}
		events := map[EventKind]bool{}
		for _, k := range AllEventKinds {
			events[k] = true
		}

		for from, row := range defaultTable {
			assert.True(t, states[from], "unknown source state %s", from)
			for event, tr := range row {
				assert.True(t, events[event], "unknown event %s", event)
				assert.True(t, states[tr.to], "unknown target state %s", tr.to)
			}
		}
	})

	t.Run("every state should accept at least one event", func(t *testing.T) {
		for _, k := range AllStateKinds {
			if k == KindDataLoadingFailure {
				continue
			}
			assert.NotEmpty(t, defaultTable[k], "state %s is a dead end", k)
		}
		assert.Empty(t, defaultTable[KindDataLoadingFailure])
	})

	// Every state/event pair either matches its declared row or is rejected
	// without touching the machine.
	for _, fromKind := range AllStateKinds {
		for _, eventKind := range AllEventKinds {
			t.Run(string(fromKind)+"/"+string(eventKind), func(t *testing.T) {
				from := sampleState(t, fromKind)
				event := sampleEvent(t, eventKind)

				m := NewMachine()
				m.state = from
				m.effects.Store(ShowCustomsForm{})

				err := m.HandleEvent(event)

				tr, declared := defaultTable.lookup(fromKind, eventKind)
				if !declared {
					require.ErrorIs(t, err, ErrProtocolViolation)
					assert.Equal(t, from, m.State())
					assert.Equal(t, ShowCustomsForm{}, m.Effect())
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tr.to, m.State().Kind())
				assert.Equal(t, tr.effect, m.Effect().Kind())

				if before, ok := DataOf(from); ok {
					after, ok := DataOf(m.State())
					require.True(t, ok)
					assert.True(t, after.StepsDone().Contains(before.StepsDone()))
				}
			})
		}
	}
}

func TestTransitionTable_DuplicateRowPanics(t *testing.T) {
	table := transitionTable{}
	noop := func(s State, _ Event) (State, SideEffect) { return s, NoOp{} }
	table.on(KindIdle, EventFlowStarted, KindIdle, EffectNoOp, noop)

	assert.Panics(t, func() {
		table.on(KindIdle, EventFlowStarted, KindIdle, EffectNoOp, noop)
	})
}
