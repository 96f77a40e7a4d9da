package labelflow

import (
	"sort"
	"strings"

	"shippinglabel/internal/pkg/errs"
)

// Machine drives one run of the label wizard.
//
// Example:
//
//	m := labelflow.NewMachine(labelflow.WithObserver(labelflow.NewLogObserver(logger)))
//	if err := m.Start("1042"); err != nil {
//	    return err
//	}
//	effect := m.Effect() // LoadData{OrderID: "1042"}
//	// ... load the order, then:
//	err := m.HandleEvent(labelflow.DataLoaded{Origin: origin, Shipping: shipping})
type Machine struct {
	state    State
	table    transitionTable
	effects  *EffectCell
	observer Observer
}

// Option configures a Machine.
type Option func(*Machine)

// WithObserver installs an Observer. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(m *Machine) {
		if o != nil {
			m.observer = o
		}
	}
}

// NewMachine returns a machine in Idle whose effect is NoOp.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		state:    Idle{},
		table:    defaultTable,
		effects:  NewEffectCell(),
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start begins a run for orderID. It is only accepted in Idle.
func (m *Machine) Start(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	return m.HandleEvent(FlowStarted{OrderID: orderID})
}

// HandleEvent applies one transition and publishes its side effect.
//
// Returns:
//   - nil when the transition was applied
//   - *ProtocolViolationError when the current state does not accept event;
//     state and effect stay unchanged
//   - errs.ValueIsRequiredError when event is nil
func (m *Machine) HandleEvent(event Event) error {
	if event == nil {
		return errs.NewValueIsRequiredError("event")
	}

	m.observer.EventReceived(m.state, event)

	tr, ok := m.table.lookup(m.state.Kind(), event.Kind())
	if !ok {
		err := &ProtocolViolationError{State: m.state, Event: event}
		m.observer.Rejected(err)
		return err
	}

	from := m.state
	next, effect := tr.apply(from, event)
	m.state = next
	m.effects.Store(effect)
	m.observer.Transitioned(from, event, next, effect)
	return nil
}

// Reset abandons the current run: the machine returns to Idle, all progress
// is dropped and the effect becomes NoOp.
func (m *Machine) Reset() {
	m.state = Idle{}
	m.effects.Store(NoOp{})
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Effect returns the most recent side effect, NoOp before the first transition.
func (m *Machine) Effect() SideEffect {
	return m.effects.Load()
}

// Subscribe follows the effect cell. See EffectCell.Subscribe.
func (m *Machine) Subscribe() (<-chan SideEffect, func()) {
	return m.effects.Subscribe()
}

// Accepts reports whether the current state accepts events of kind.
func (m *Machine) Accepts(kind EventKind) bool {
	_, ok := m.table.lookup(m.state.Kind(), kind)
	return ok
}

// AcceptedEvents lists the event kinds the current state accepts, sorted.
func (m *Machine) AcceptedEvents() []EventKind {
	row := m.table[m.state.Kind()]
	kinds := make([]EventKind, 0, len(row))
	for k := range row {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
