package labelflow

import "shippinglabel/internal/core/domain/model/kernel"

// EventKind names an Event variant.
type EventKind string

const (
	EventFlowStarted       EventKind = "FlowStarted"
	EventDataLoaded        EventKind = "DataLoaded"
	EventDataLoadingFailed EventKind = "DataLoadingFailed"

	EventAddressValidated         EventKind = "AddressValidated"
	EventAddressInvalid           EventKind = "AddressInvalid"
	EventAddressNotRecognized     EventKind = "AddressNotRecognized"
	EventAddressUsedAsIs          EventKind = "AddressUsedAsIs"
	EventAddressEditFinished      EventKind = "AddressEditFinished"
	EventSuggestedAddressSelected EventKind = "SuggestedAddressSelected"

	EventOriginAddressValidationStarted   EventKind = "OriginAddressValidationStarted"
	EventEditOriginAddressRequested       EventKind = "EditOriginAddressRequested"
	EventShippingAddressValidationStarted EventKind = "ShippingAddressValidationStarted"
	EventEditShippingAddressRequested     EventKind = "EditShippingAddressRequested"

	EventPackageSelectionStarted EventKind = "PackageSelectionStarted"
	EventEditPackagingRequested  EventKind = "EditPackagingRequested"
	EventPackagesSelected        EventKind = "PackagesSelected"

	EventCustomsDeclarationStarted EventKind = "CustomsDeclarationStarted"
	EventEditCustomsRequested      EventKind = "EditCustomsRequested"
	EventCustomsFormFilledOut      EventKind = "CustomsFormFilledOut"

	EventShippingCarrierSelectionStarted EventKind = "ShippingCarrierSelectionStarted"
	EventEditShippingCarrierRequested    EventKind = "EditShippingCarrierRequested"
	EventShippingCarrierSelected         EventKind = "ShippingCarrierSelected"

	EventPaymentSelectionStarted EventKind = "PaymentSelectionStarted"
	EventEditPaymentRequested    EventKind = "EditPaymentRequested"
	EventPaymentSelected         EventKind = "PaymentSelected"
)

// AllEventKinds lists every Event variant.
var AllEventKinds = []EventKind{
	EventFlowStarted,
	EventDataLoaded,
	EventDataLoadingFailed,
	EventAddressValidated,
	EventAddressInvalid,
	EventAddressNotRecognized,
	EventAddressUsedAsIs,
	EventAddressEditFinished,
	EventSuggestedAddressSelected,
	EventOriginAddressValidationStarted,
	EventEditOriginAddressRequested,
	EventShippingAddressValidationStarted,
	EventEditShippingAddressRequested,
	EventPackageSelectionStarted,
	EventEditPackagingRequested,
	EventPackagesSelected,
	EventCustomsDeclarationStarted,
	EventEditCustomsRequested,
	EventCustomsFormFilledOut,
	EventShippingCarrierSelectionStarted,
	EventEditShippingCarrierRequested,
	EventShippingCarrierSelected,
	EventPaymentSelectionStarted,
	EventEditPaymentRequested,
	EventPaymentSelected,
}

// Event is the closed set of stimuli the machine reacts to.
type Event interface {
	Kind() EventKind
	isEvent()
}

type (
	// FlowStarted begins a run for one order.
	FlowStarted struct{ OrderID string }
	// DataLoaded carries the order's addresses from the order loader.
	DataLoaded struct{ Origin, Shipping kernel.Address }
	// DataLoadingFailed reports that the order could not be loaded.
	DataLoadingFailed struct{}

	// AddressValidated reports a deliverable address, possibly normalized.
	AddressValidated struct{ Address kernel.Address }
	// AddressInvalid reports an address the validator would correct.
	AddressInvalid struct{ Suggested kernel.Address }
	// AddressNotRecognized reports an address the validator could not match.
	AddressNotRecognized struct{}
	// AddressUsedAsIs accepts an address without validating it again.
	AddressUsedAsIs struct{ Address kernel.Address }
	// AddressEditFinished submits an edited address for validation.
	AddressEditFinished struct{ Address kernel.Address }
	// SuggestedAddressSelected accepts the validator's suggestion.
	SuggestedAddressSelected struct{ Address kernel.Address }

	OriginAddressValidationStarted   struct{}
	EditOriginAddressRequested       struct{}
	ShippingAddressValidationStarted struct{}
	EditShippingAddressRequested     struct{}

	PackageSelectionStarted struct{}
	EditPackagingRequested  struct{}
	PackagesSelected        struct{}

	CustomsDeclarationStarted struct{}
	EditCustomsRequested      struct{}
	CustomsFormFilledOut      struct{}

	ShippingCarrierSelectionStarted struct{}
	EditShippingCarrierRequested    struct{}
	ShippingCarrierSelected         struct{}

	PaymentSelectionStarted struct{}
	EditPaymentRequested    struct{}
	PaymentSelected         struct{}
)

func (FlowStarted) Kind() EventKind                      { return EventFlowStarted }
func (DataLoaded) Kind() EventKind                       { return EventDataLoaded }
func (DataLoadingFailed) Kind() EventKind                { return EventDataLoadingFailed }
func (AddressValidated) Kind() EventKind                 { return EventAddressValidated }
func (AddressInvalid) Kind() EventKind                   { return EventAddressInvalid }
func (AddressNotRecognized) Kind() EventKind             { return EventAddressNotRecognized }
func (AddressUsedAsIs) Kind() EventKind                  { return EventAddressUsedAsIs }
func (AddressEditFinished) Kind() EventKind              { return EventAddressEditFinished }
func (SuggestedAddressSelected) Kind() EventKind         { return EventSuggestedAddressSelected }
func (OriginAddressValidationStarted) Kind() EventKind   { return EventOriginAddressValidationStarted }
func (EditOriginAddressRequested) Kind() EventKind       { return EventEditOriginAddressRequested }
func (ShippingAddressValidationStarted) Kind() EventKind { return EventShippingAddressValidationStarted }
func (EditShippingAddressRequested) Kind() EventKind     { return EventEditShippingAddressRequested }
func (PackageSelectionStarted) Kind() EventKind          { return EventPackageSelectionStarted }
func (EditPackagingRequested) Kind() EventKind           { return EventEditPackagingRequested }
func (PackagesSelected) Kind() EventKind                 { return EventPackagesSelected }
func (CustomsDeclarationStarted) Kind() EventKind        { return EventCustomsDeclarationStarted }
func (EditCustomsRequested) Kind() EventKind             { return EventEditCustomsRequested }
func (CustomsFormFilledOut) Kind() EventKind             { return EventCustomsFormFilledOut }
func (ShippingCarrierSelectionStarted) Kind() EventKind  { return EventShippingCarrierSelectionStarted }
func (EditShippingCarrierRequested) Kind() EventKind     { return EventEditShippingCarrierRequested }
func (ShippingCarrierSelected) Kind() EventKind          { return EventShippingCarrierSelected }
func (PaymentSelectionStarted) Kind() EventKind          { return EventPaymentSelectionStarted }
func (EditPaymentRequested) Kind() EventKind             { return EventEditPaymentRequested }
func (PaymentSelected) Kind() EventKind                  { return EventPaymentSelected }

func (FlowStarted) isEvent()                      {}
func (DataLoaded) isEvent()                       {}
func (DataLoadingFailed) isEvent()                {}
func (AddressValidated) isEvent()                 {}
func (AddressInvalid) isEvent()                   {}
func (AddressNotRecognized) isEvent()             {}
func (AddressUsedAsIs) isEvent()                  {}
func (AddressEditFinished) isEvent()              {}
func (SuggestedAddressSelected) isEvent()         {}
func (OriginAddressValidationStarted) isEvent()   {}
func (EditOriginAddressRequested) isEvent()       {}
func (ShippingAddressValidationStarted) isEvent() {}
func (EditShippingAddressRequested) isEvent()     {}
func (PackageSelectionStarted) isEvent()          {}
func (EditPackagingRequested) isEvent()           {}
func (PackagesSelected) isEvent()                 {}
func (CustomsDeclarationStarted) isEvent()        {}
func (EditCustomsRequested) isEvent()             {}
func (CustomsFormFilledOut) isEvent()             {}
func (ShippingCarrierSelectionStarted) isEvent()  {}
func (EditShippingCarrierRequested) isEvent()     {}
func (ShippingCarrierSelected) isEvent()          {}
func (PaymentSelectionStarted) isEvent()          {}
func (EditPaymentRequested) isEvent()             {}
func (PaymentSelected) isEvent()                  {}

// NewSignal returns the payload-free event of the given kind. It reports
// false for kinds that carry data (FlowStarted, DataLoaded, AddressValidated,
// AddressInvalid, AddressUsedAsIs, AddressEditFinished,
// SuggestedAddressSelected) and for unknown kinds.
func NewSignal(kind EventKind) (Event, bool) {
	e, ok := signals[kind]
	return e, ok
}

var signals = map[EventKind]Event{
	EventDataLoadingFailed:                DataLoadingFailed{},
	EventAddressNotRecognized:             AddressNotRecognized{},
	EventOriginAddressValidationStarted:   OriginAddressValidationStarted{},
	EventEditOriginAddressRequested:       EditOriginAddressRequested{},
	EventShippingAddressValidationStarted: ShippingAddressValidationStarted{},
	EventEditShippingAddressRequested:     EditShippingAddressRequested{},
	EventPackageSelectionStarted:          PackageSelectionStarted{},
	EventEditPackagingRequested:           EditPackagingRequested{},
	EventPackagesSelected:                 PackagesSelected{},
	EventCustomsDeclarationStarted:        CustomsDeclarationStarted{},
	EventEditCustomsRequested:             EditCustomsRequested{},
	EventCustomsFormFilledOut:             CustomsFormFilledOut{},
	EventShippingCarrierSelectionStarted:  ShippingCarrierSelectionStarted{},
	EventEditShippingCarrierRequested:     EditShippingCarrierRequested{},
	EventShippingCarrierSelected:          ShippingCarrierSelected{},
	EventPaymentSelectionStarted:          PaymentSelectionStarted{},
	EventEditPaymentRequested:             EditPaymentRequested{},
	EventPaymentSelected:                  PaymentSelected{},
}

// NewAddressEvent returns the event of the given kind carrying a. It reports
// false for kinds that do not carry a single address.
func NewAddressEvent(kind EventKind, a kernel.Address) (Event, bool) {
	switch kind {
	case EventAddressValidated:
		return AddressValidated{Address: a}, true
	case EventAddressInvalid:
		return AddressInvalid{Suggested: a}, true
	case EventAddressUsedAsIs:
		return AddressUsedAsIs{Address: a}, true
	case EventAddressEditFinished:
		return AddressEditFinished{Address: a}, true
	case EventSuggestedAddressSelected:
		return SuggestedAddressSelected{Address: a}, true
	default:
		return nil, false
	}
}
