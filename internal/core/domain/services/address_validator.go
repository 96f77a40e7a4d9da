package services

import (
	"context"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/ports"
)

var _ ports.AddressValidator = RuleAddressValidator{}

// RuleAddressValidator is an in-process AddressValidator backed by per-country
// formatting rules. It does not know whether a street exists; it checks that
// an address is complete and spelled the way carriers expect.
//
// Outcomes:
//   - NotRecognized: street, city or country missing, unsupported country,
//     unknown region, or a postal code that cannot be put into shape
//   - Invalid: the address can be corrected (postal code format, region name
//     instead of code, spelled-out street suffix); the correction is suggested
//   - Valid: nothing but whitespace or country casing had to change
//
// Example:
//
//	v := services.NewRuleAddressValidator()
//	res, err := v.Validate(ctx, address)
//	if res.Outcome == ports.OutcomeInvalid {
//	    // offer res.Address to the user
//	}
type RuleAddressValidator struct{}

// NewRuleAddressValidator creates a RuleAddressValidator.
func NewRuleAddressValidator() RuleAddressValidator {
	return RuleAddressValidator{}
}

// Validate classifies address. It only fails when ctx is done or address
// was not constructed.
func (v RuleAddressValidator) Validate(ctx context.Context, address kernel.Address) (ports.ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.ValidationResult{}, err
	}
	if err := address.Validate(); err != nil {
		return ports.ValidationResult{}, err
	}

	tidy := tidyFields(address.Fields())
	if tidy.Street1 == "" || tidy.City == "" {
		return notRecognized(), nil
	}

	rule, ok := countryRules[tidy.Country]
	if !ok {
		return notRecognized(), nil
	}

	corrected := tidy
	corrected.PostalCode = rule.formatPostal(tidy.PostalCode)
	corrected.Region = normalizeRegion(rule, tidy.Region)
	if rule.abbreviateStreet {
		corrected.Street1 = abbreviateStreetSuffix(tidy.Street1)
		corrected.Street2 = abbreviateStreetSuffix(tidy.Street2)
	}

	if !rule.postalPattern.MatchString(corrected.PostalCode) || !isKnownRegion(rule, corrected.Region) {
		return notRecognized(), nil
	}

	if corrected == tidy {
		normalized, err := kernel.NewAddress(tidy)
		if err != nil {
			return ports.ValidationResult{}, err
		}
		return ports.ValidationResult{Outcome: ports.OutcomeValid, Address: normalized}, nil
	}

	suggestion, err := kernel.NewAddress(corrected)
	if err != nil {
		return ports.ValidationResult{}, err
	}
	return ports.ValidationResult{Outcome: ports.OutcomeInvalid, Address: suggestion}, nil
}

func tidyFields(f kernel.AddressFields) kernel.AddressFields {
	return kernel.AddressFields{
		Name:       collapseSpaces(f.Name),
		Company:    collapseSpaces(f.Company),
		Phone:      collapseSpaces(f.Phone),
		Street1:    collapseSpaces(f.Street1),
		Street2:    collapseSpaces(f.Street2),
		City:       collapseSpaces(f.City),
		Region:     collapseSpaces(f.Region),
		PostalCode: collapseSpaces(f.PostalCode),
		Country:    normalizeCountry(f.Country),
	}
}

func notRecognized() ports.ValidationResult {
	return ports.ValidationResult{Outcome: ports.OutcomeNotRecognized}
}
