package ports

import (
	"context"
	"fmt"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/pkg/errs"
)

// ValidationOutcome classifies a validator answer.
type ValidationOutcome int

const (
	OutcomeUnknown ValidationOutcome = iota
	// OutcomeValid means the address is deliverable. Address may be a
	// normalized form of the input.
	OutcomeValid
	// OutcomeInvalid means the validator proposes Address instead.
	OutcomeInvalid
	// OutcomeNotRecognized means no match was found; Address is empty.
	OutcomeNotRecognized
)

func (o ValidationOutcome) String() string {
	switch o {
	case OutcomeValid:
		return "Valid"
	case OutcomeInvalid:
		return "Invalid"
	case OutcomeNotRecognized:
		return "NotRecognized"
	default:
		return "Unknown"
	}
}

// ValidationResult is one validator answer.
type ValidationResult struct {
	Outcome ValidationOutcome
	Address kernel.Address
}

// Validate checks that Address is set exactly when the outcome needs one.
func (r ValidationResult) Validate() error {
	switch r.Outcome {
	case OutcomeValid, OutcomeInvalid:
		if err := r.Address.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("address", err)
		}
	case OutcomeNotRecognized:
	default:
		return errs.NewValueIsInvalidErrorWithCause("outcome", fmt.Errorf("%d is not a valid outcome", r.Outcome))
	}
	return nil
}

// AddressValidator checks a postal address. A returned error is a transport
// failure and is handled like OutcomeNotRecognized.
type AddressValidator interface {
	Validate(ctx context.Context, address kernel.Address) (ValidationResult, error)
}
