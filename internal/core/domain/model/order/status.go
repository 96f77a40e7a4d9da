package order

import (
	"fmt"

	"shippinglabel/internal/pkg/errs"
)

// Status is the labeling state of an order.
//
//	Pending ──> Labeled
//
// An order becomes Labeled once a label flow for it has run through payment.
// Labeled is final.
type Status int

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = iota

	// Pending orders have no label yet.
	Pending

	// Labeled orders have a paid label.
	Labeled
)

var statusStrings = map[Status]string{
	Unknown: "Unknown",
	Pending: "Pending",
	Labeled: "Labeled",
}

// StatusFromString parses the persisted form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is Pending or Labeled.
func (s Status) Validate() error {
	if s != Pending && s != Labeled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// MarkLabeled transitions Pending to Labeled.
func (s Status) MarkLabeled() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to label", s.String()),
		)
	}
	return Labeled, nil
}
