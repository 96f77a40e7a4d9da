package labelflow

// StateKind names a State variant.
type StateKind string

const (
	KindIdle                      StateKind = "Idle"
	KindDataLoading               StateKind = "DataLoading"
	KindDataLoadingFailure        StateKind = "DataLoadingFailure"
	KindWaitingForUser            StateKind = "WaitingForUser"
	KindOriginAddressValidation   StateKind = "OriginAddressValidation"
	KindOriginAddressSuggestion   StateKind = "OriginAddressSuggestion"
	KindOriginAddressEditing      StateKind = "OriginAddressEditing"
	KindShippingAddressValidation StateKind = "ShippingAddressValidation"
	KindShippingAddressSuggestion StateKind = "ShippingAddressSuggestion"
	KindShippingAddressEditing    StateKind = "ShippingAddressEditing"
	KindPackageSelection          StateKind = "PackageSelection"
	KindCustomsDeclaration        StateKind = "CustomsDeclaration"
	KindShippingCarrierSelection  StateKind = "ShippingCarrierSelection"
	KindPaymentSelection          StateKind = "PaymentSelection"
)

// AllStateKinds lists every State variant.
var AllStateKinds = []StateKind{
	KindIdle,
	KindDataLoading,
	KindDataLoadingFailure,
	KindWaitingForUser,
	KindOriginAddressValidation,
	KindOriginAddressSuggestion,
	KindOriginAddressEditing,
	KindShippingAddressValidation,
	KindShippingAddressSuggestion,
	KindShippingAddressEditing,
	KindPackageSelection,
	KindCustomsDeclaration,
	KindShippingCarrierSelection,
	KindPaymentSelection,
}

// State is the closed set of wizard states. Only types in this package
// implement it.
type State interface {
	Kind() StateKind
	isState()
}

// DataOf returns the snapshot carried by s. Idle, DataLoading and
// DataLoadingFailure carry none.
func DataOf(s State) (Data, bool) {
	if c, ok := s.(interface{ FlowData() Data }); ok {
		return c.FlowData(), true
	}
	return Data{}, false
}

type (
	Idle               struct{}
	DataLoading        struct{}
	DataLoadingFailure struct{}

	WaitingForUser struct{ Data Data }

	OriginAddressValidation struct{ Data Data }
	OriginAddressSuggestion struct{ Data Data }
	OriginAddressEditing    struct{ Data Data }

	ShippingAddressValidation struct{ Data Data }
	ShippingAddressSuggestion struct{ Data Data }
	ShippingAddressEditing    struct{ Data Data }

	PackageSelection         struct{ Data Data }
	CustomsDeclaration       struct{ Data Data }
	ShippingCarrierSelection struct{ Data Data }
	PaymentSelection         struct{ Data Data }
)

func (Idle) Kind() StateKind                      { return KindIdle }
func (DataLoading) Kind() StateKind               { return KindDataLoading }
func (DataLoadingFailure) Kind() StateKind        { return KindDataLoadingFailure }
func (WaitingForUser) Kind() StateKind            { return KindWaitingForUser }
func (OriginAddressValidation) Kind() StateKind   { return KindOriginAddressValidation }
func (OriginAddressSuggestion) Kind() StateKind   { return KindOriginAddressSuggestion }
func (OriginAddressEditing) Kind() StateKind      { return KindOriginAddressEditing }
func (ShippingAddressValidation) Kind() StateKind { return KindShippingAddressValidation }
func (ShippingAddressSuggestion) Kind() StateKind { return KindShippingAddressSuggestion }
func (ShippingAddressEditing) Kind() StateKind    { return KindShippingAddressEditing }
func (PackageSelection) Kind() StateKind          { return KindPackageSelection }
func (CustomsDeclaration) Kind() StateKind        { return KindCustomsDeclaration }
func (ShippingCarrierSelection) Kind() StateKind  { return KindShippingCarrierSelection }
func (PaymentSelection) Kind() StateKind          { return KindPaymentSelection }

func (Idle) isState()                      {}
func (DataLoading) isState()               {}
func (DataLoadingFailure) isState()        {}
func (WaitingForUser) isState()            {}
func (OriginAddressValidation) isState()   {}
func (OriginAddressSuggestion) isState()   {}
func (OriginAddressEditing) isState()      {}
func (ShippingAddressValidation) isState() {}
func (ShippingAddressSuggestion) isState() {}
func (ShippingAddressEditing) isState()    {}
func (PackageSelection) isState()          {}
func (CustomsDeclaration) isState()        {}
func (ShippingCarrierSelection) isState()  {}
func (PaymentSelection) isState()          {}

func (s WaitingForUser) FlowData() Data            { return s.Data }
func (s OriginAddressValidation) FlowData() Data   { return s.Data }
func (s OriginAddressSuggestion) FlowData() Data   { return s.Data }
func (s OriginAddressEditing) FlowData() Data      { return s.Data }
func (s ShippingAddressValidation) FlowData() Data { return s.Data }
func (s ShippingAddressSuggestion) FlowData() Data { return s.Data }
func (s ShippingAddressEditing) FlowData() Data    { return s.Data }
func (s PackageSelection) FlowData() Data          { return s.Data }
func (s CustomsDeclaration) FlowData() Data        { return s.Data }
func (s ShippingCarrierSelection) FlowData() Data  { return s.Data }
func (s PaymentSelection) FlowData() Data          { return s.Data }
