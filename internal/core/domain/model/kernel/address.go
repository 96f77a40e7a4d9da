package kernel

import (
	"errors"
	"strings"
	"unicode/utf8"

	"shippinglabel/internal/pkg/errs"
	"shippinglabel/internal/pkg/guard"
)

// AddressFieldMaxLength bounds every textual address field.
const AddressFieldMaxLength = 100

// ErrAddressIsNotConstructed is returned when an Address was not built with NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

// AddressFields carries the raw parts of a postal address.
type AddressFields struct {
	Name       string
	Company    string
	Phone      string
	Street1    string
	Street2    string
	City       string
	Region     string
	PostalCode string
	Country    string
}

// Address is an immutable postal address value object. Two addresses are
// equal when every field is equal, so Address is safe to compare with ==.
//
// The label flow never looks inside an Address; it only forwards it between
// the order loader, the validator and the UI.
type Address struct { //nolint:recvcheck //using for validation
	fields AddressFields
	guard  guard.ConstructorGuard
}

// NewAddress trims every field and builds an Address.
//
// Rules:
//   - Country is required
//   - No field may exceed AddressFieldMaxLength characters
//
// Whether the address is deliverable is not checked here; that is the
// address validator's job.
func NewAddress(fields AddressFields) (Address, error) {
	a := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := a.setFields(fields); err != nil {
		return Address{}, err
	}

	return a, nil
}

// MustNewAddress is NewAddress for fixtures; it panics on invalid input.
func MustNewAddress(fields AddressFields) Address {
	a, err := NewAddress(fields)
	if err != nil {
		panic(err)
	}
	return a
}

// Validate reports whether the Address was constructed through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Fields returns a copy of the address parts.
func (a Address) Fields() AddressFields {
	return a.fields
}

// Name returns the recipient or sender name.
func (a Address) Name() string { return a.fields.Name }

// Company returns the company line.
func (a Address) Company() string { return a.fields.Company }

// Phone returns the contact phone number.
func (a Address) Phone() string { return a.fields.Phone }

// Street1 returns the first street line.
func (a Address) Street1() string { return a.fields.Street1 }

// Street2 returns the second street line.
func (a Address) Street2() string { return a.fields.Street2 }

// City returns the city.
func (a Address) City() string { return a.fields.City }

// Region returns the state, province or region.
func (a Address) Region() string { return a.fields.Region }

// PostalCode returns the postal or ZIP code.
func (a Address) PostalCode() string { return a.fields.PostalCode }

// Country returns the country code.
func (a Address) Country() string { return a.fields.Country }

// IsEqual compares two addresses structurally.
func (a Address) IsEqual(other Address) bool {
	return a == other
}

// String renders the non-empty parts on a single line.
func (a Address) String() string {
	parts := make([]string, 0, 8)
	for _, p := range []string{
		a.fields.Name, a.fields.Company, a.fields.Street1, a.fields.Street2,
		a.fields.City, a.fields.Region, a.fields.PostalCode, a.fields.Country,
	} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func (a *Address) setFields(f AddressFields) error {
	f = AddressFields{
		Name:       strings.TrimSpace(f.Name),
		Company:    strings.TrimSpace(f.Company),
		Phone:      strings.TrimSpace(f.Phone),
		Street1:    strings.TrimSpace(f.Street1),
		Street2:    strings.TrimSpace(f.Street2),
		City:       strings.TrimSpace(f.City),
		Region:     strings.TrimSpace(f.Region),
		PostalCode: strings.TrimSpace(f.PostalCode),
		Country:    strings.TrimSpace(f.Country),
	}

	var countryErr error
	if f.Country == "" {
		countryErr = errs.NewValueIsRequiredError("country")
	}

	if err := errors.Join(
		countryErr,
		checkLength("name", f.Name),
		checkLength("company", f.Company),
		checkLength("phone", f.Phone),
		checkLength("street1", f.Street1),
		checkLength("street2", f.Street2),
		checkLength("city", f.City),
		checkLength("region", f.Region),
		checkLength("postalCode", f.PostalCode),
		checkLength("country", f.Country),
	); err != nil {
		return err
	}

	a.fields = f
	return nil
}

func checkLength(param, value string) error {
	if n := utf8.RuneCountInString(value); n > AddressFieldMaxLength {
		return errs.NewValueIsOutOfRangeError(param+" length", n, 0, AddressFieldMaxLength)
	}
	return nil
}
