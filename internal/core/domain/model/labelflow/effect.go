package labelflow

import (
	"errors"

	"shippinglabel/internal/core/domain/model/kernel"
)

// ErrDataLoading is carried by ShowError when the order could not be loaded.
var ErrDataLoading = errors.New("order data could not be loaded")

// EffectKind names a SideEffect variant.
type EffectKind string

const (
	EffectNoOp                  EffectKind = "NoOp"
	EffectLoadData              EffectKind = "LoadData"
	EffectShowError             EffectKind = "ShowError"
	EffectUpdateViewState       EffectKind = "UpdateViewState"
	EffectValidateAddress       EffectKind = "ValidateAddress"
	EffectShowAddressSuggestion EffectKind = "ShowAddressSuggestion"
	EffectOpenAddressEditor     EffectKind = "OpenAddressEditor"
	EffectShowPackageOptions    EffectKind = "ShowPackageOptions"
	EffectShowCustomsForm       EffectKind = "ShowCustomsForm"
	EffectShowCarrierOptions    EffectKind = "ShowCarrierOptions"
	EffectShowPaymentDetails    EffectKind = "ShowPaymentDetails"
)

// SideEffect is work the machine asks its driver to perform. The machine
// never performs it itself.
type SideEffect interface {
	Kind() EffectKind
	isEffect()
}

type (
	NoOp            struct{}
	LoadData        struct{ OrderID string }
	ShowError       struct{ Err error }
	UpdateViewState struct{ Data Data }
	ValidateAddress struct{ Address kernel.Address }
	// ShowAddressSuggestion offers Suggested as a replacement for Entered.
	ShowAddressSuggestion struct{ Entered, Suggested kernel.Address }
	OpenAddressEditor     struct{ Address kernel.Address }
	ShowPackageOptions    struct{}
	ShowCustomsForm       struct{}
	ShowCarrierOptions    struct{}
	ShowPaymentDetails    struct{}
)

func (NoOp) Kind() EffectKind                  { return EffectNoOp }
func (LoadData) Kind() EffectKind              { return EffectLoadData }
func (ShowError) Kind() EffectKind             { return EffectShowError }
func (UpdateViewState) Kind() EffectKind       { return EffectUpdateViewState }
func (ValidateAddress) Kind() EffectKind       { return EffectValidateAddress }
func (ShowAddressSuggestion) Kind() EffectKind { return EffectShowAddressSuggestion }
func (OpenAddressEditor) Kind() EffectKind     { return EffectOpenAddressEditor }
func (ShowPackageOptions) Kind() EffectKind    { return EffectShowPackageOptions }
func (ShowCustomsForm) Kind() EffectKind       { return EffectShowCustomsForm }
func (ShowCarrierOptions) Kind() EffectKind    { return EffectShowCarrierOptions }
func (ShowPaymentDetails) Kind() EffectKind    { return EffectShowPaymentDetails }

func (NoOp) isEffect()                  {}
func (LoadData) isEffect()              {}
func (ShowError) isEffect()             {}
func (UpdateViewState) isEffect()       {}
func (ValidateAddress) isEffect()       {}
func (ShowAddressSuggestion) isEffect() {}
func (OpenAddressEditor) isEffect()     {}
func (ShowPackageOptions) isEffect()    {}
func (ShowCustomsForm) isEffect()       {}
func (ShowCarrierOptions) isEffect()    {}
func (ShowPaymentDetails) isEffect()    {}
