package labelflow

import (
	"fmt"

	"shippinglabel/internal/core/domain/model/kernel"
)

type transitionFunc func(from State, event Event) (State, SideEffect)

// transition is one row of the table. to and effect describe what apply
// produces and are used for rendering the table.
type transition struct {
	to     StateKind
	effect EffectKind
	apply  transitionFunc
}

type transitionTable map[StateKind]map[EventKind]transition

// defaultTable is built once and shared read-only by every Machine.
var defaultTable = newTransitionTable()

func (t transitionTable) on(from StateKind, event EventKind, to StateKind, effect EffectKind, apply transitionFunc) {
	if t[from] == nil {
		t[from] = make(map[EventKind]transition)
	}
	if _, ok := t[from][event]; ok {
		panic(fmt.Sprintf("labelflow: duplicate transition %s --%s-->", from, event))
	}
	t[from][event] = transition{to: to, effect: effect, apply: apply}
}

func (t transitionTable) lookup(from StateKind, event EventKind) (transition, bool) {
	tr, ok := t[from][event]
	return tr, ok
}

func newTransitionTable() transitionTable {
	t := transitionTable{}

	t.on(KindIdle, EventFlowStarted, KindDataLoading, EffectLoadData,
		func(_ State, e Event) (State, SideEffect) {
			return DataLoading{}, LoadData{OrderID: e.(FlowStarted).OrderID}
		})

	t.on(KindDataLoading, EventDataLoaded, KindWaitingForUser, EffectUpdateViewState,
		func(_ State, e Event) (State, SideEffect) {
			ev := e.(DataLoaded)
			return waitForUser(NewData(ev.Origin, ev.Shipping, StepOriginAddress))
		})
	t.on(KindDataLoading, EventDataLoadingFailed, KindDataLoadingFailure, EffectShowError,
		func(State, Event) (State, SideEffect) {
			return DataLoadingFailure{}, ShowError{Err: ErrDataLoading}
		})

	t.addAddressLeg(originLeg)
	t.addAddressLeg(shippingLeg)

	for _, leg := range screenLegs {
		t.addScreenLeg(leg)
	}

	return t
}

// addressLeg describes the validate / suggest / edit loop shared by the
// origin and the shipping address.
type addressLeg struct {
	validation    StateKind
	suggestion    StateKind
	editing       StateKind
	started       EventKind
	editRequested EventKind

	enterValidation func(Data) State
	enterSuggestion func(Data) State
	enterEditing    func(Data) State

	address func(Data) kernel.Address
	// accept stores a confirmed address and records the step it unlocks.
	accept func(Data, kernel.Address) Data
}

var originLeg = addressLeg{
	validation:      KindOriginAddressValidation,
	suggestion:      KindOriginAddressSuggestion,
	editing:         KindOriginAddressEditing,
	started:         EventOriginAddressValidationStarted,
	editRequested:   EventEditOriginAddressRequested,
	enterValidation: func(d Data) State { return OriginAddressValidation{Data: d} },
	enterSuggestion: func(d Data) State { return OriginAddressSuggestion{Data: d} },
	enterEditing:    func(d Data) State { return OriginAddressEditing{Data: d} },
	address:         Data.OriginAddress,
	accept: func(d Data, a kernel.Address) Data {
		return d.withOrigin(a).withStep(StepShippingAddress)
	},
}

var shippingLeg = addressLeg{
	validation:      KindShippingAddressValidation,
	suggestion:      KindShippingAddressSuggestion,
	editing:         KindShippingAddressEditing,
	started:         EventShippingAddressValidationStarted,
	editRequested:   EventEditShippingAddressRequested,
	enterValidation: func(d Data) State { return ShippingAddressValidation{Data: d} },
	enterSuggestion: func(d Data) State { return ShippingAddressSuggestion{Data: d} },
	enterEditing:    func(d Data) State { return ShippingAddressEditing{Data: d} },
	address:         Data.ShippingAddress,
	accept: func(d Data, a kernel.Address) Data {
		return d.withShipping(a).withStep(StepPackaging)
	},
}

func (t transitionTable) addAddressLeg(leg addressLeg) {
	openEditor := func(from State, _ Event) (State, SideEffect) {
		d := mustData(from)
		return leg.enterEditing(d), OpenAddressEditor{Address: leg.address(d)}
	}

	t.on(KindWaitingForUser, leg.started, leg.validation, EffectValidateAddress,
		func(from State, _ Event) (State, SideEffect) {
			d := mustData(from)
			return leg.enterValidation(d), ValidateAddress{Address: leg.address(d)}
		})
	t.on(KindWaitingForUser, leg.editRequested, leg.editing, EffectOpenAddressEditor, openEditor)

	t.on(leg.validation, EventAddressValidated, KindWaitingForUser, EffectUpdateViewState,
		func(from State, e Event) (State, SideEffect) {
			return waitForUser(leg.accept(mustData(from), e.(AddressValidated).Address))
		})
	t.on(leg.validation, EventAddressInvalid, leg.suggestion, EffectShowAddressSuggestion,
		func(from State, e Event) (State, SideEffect) {
			d := mustData(from)
			return leg.enterSuggestion(d), ShowAddressSuggestion{
				Entered:   leg.address(d),
				Suggested: e.(AddressInvalid).Suggested,
			}
		})
	t.on(leg.validation, EventAddressNotRecognized, leg.editing, EffectOpenAddressEditor, openEditor)

	t.on(leg.suggestion, EventSuggestedAddressSelected, KindWaitingForUser, EffectUpdateViewState,
		func(from State, e Event) (State, SideEffect) {
			return waitForUser(leg.accept(mustData(from), e.(SuggestedAddressSelected).Address))
		})
	t.on(leg.suggestion, leg.editRequested, leg.editing, EffectOpenAddressEditor, openEditor)

	t.on(leg.editing, EventAddressEditFinished, leg.validation, EffectValidateAddress,
		func(from State, e Event) (State, SideEffect) {
			return leg.enterValidation(mustData(from)), ValidateAddress{Address: e.(AddressEditFinished).Address}
		})
	t.on(leg.editing, EventAddressUsedAsIs, KindWaitingForUser, EffectUpdateViewState,
		func(from State, e Event) (State, SideEffect) {
			return waitForUser(leg.accept(mustData(from), e.(AddressUsedAsIs).Address))
		})
}

// screenLeg describes a step that opens one screen and completes with one event.
type screenLeg struct {
	state         StateKind
	started       EventKind
	editRequested EventKind
	completed     EventKind
	show          SideEffect
	enter         func(Data) State
	// unlocks is the step recorded when the screen completes.
	unlocks FlowStep
}

var screenLegs = []screenLeg{
	{
		state:         KindPackageSelection,
		started:       EventPackageSelectionStarted,
		editRequested: EventEditPackagingRequested,
		completed:     EventPackagesSelected,
		show:          ShowPackageOptions{},
		enter:         func(d Data) State { return PackageSelection{Data: d} },
		unlocks:       StepCustoms,
	},
	{
		state:         KindCustomsDeclaration,
		started:       EventCustomsDeclarationStarted,
		editRequested: EventEditCustomsRequested,
		completed:     EventCustomsFormFilledOut,
		show:          ShowCustomsForm{},
		enter:         func(d Data) State { return CustomsDeclaration{Data: d} },
		unlocks:       StepCarrier,
	},
	{
		state:         KindShippingCarrierSelection,
		started:       EventShippingCarrierSelectionStarted,
		editRequested: EventEditShippingCarrierRequested,
		completed:     EventShippingCarrierSelected,
		show:          ShowCarrierOptions{},
		enter:         func(d Data) State { return ShippingCarrierSelection{Data: d} },
		unlocks:       StepPayment,
	},
	{
		state:         KindPaymentSelection,
		started:       EventPaymentSelectionStarted,
		editRequested: EventEditPaymentRequested,
		completed:     EventPaymentSelected,
		show:          ShowPaymentDetails{},
		enter:         func(d Data) State { return PaymentSelection{Data: d} },
		unlocks:       StepDone,
	},
}

func (t transitionTable) addScreenLeg(leg screenLeg) {
	open := func(from State, _ Event) (State, SideEffect) {
		return leg.enter(mustData(from)), leg.show
	}

	t.on(KindWaitingForUser, leg.started, leg.state, leg.show.Kind(), open)
	t.on(KindWaitingForUser, leg.editRequested, leg.state, leg.show.Kind(), open)
	t.on(leg.state, leg.completed, KindWaitingForUser, EffectUpdateViewState,
		func(from State, _ Event) (State, SideEffect) {
			return waitForUser(mustData(from).withStep(leg.unlocks))
		})
}

func waitForUser(d Data) (State, SideEffect) {
	return WaitingForUser{Data: d}, UpdateViewState{Data: d}
}

func mustData(s State) Data {
	d, ok := DataOf(s)
	if !ok {
		panic(fmt.Sprintf("labelflow: state %s carries no data", s.Kind()))
	}
	return d
}
