package labelflow

import (
	"fmt"
	"math/bits"
	"strings"

	"shippinglabel/internal/pkg/errs"
)

// FlowStep is one milestone of the label wizard.
type FlowStep int

const (
	// StepUnknown is the zero value and never part of a valid flow.
	StepUnknown FlowStep = iota
	StepOriginAddress
	StepShippingAddress
	StepPackaging
	StepCustoms
	StepCarrier
	StepPayment
	StepDone
)

// AllSteps lists the valid steps in wizard order.
var AllSteps = []FlowStep{
	StepOriginAddress,
	StepShippingAddress,
	StepPackaging,
	StepCustoms,
	StepCarrier,
	StepPayment,
	StepDone,
}

var stepNames = map[FlowStep]string{
	StepUnknown:         "UNKNOWN",
	StepOriginAddress:   "ORIGIN_ADDRESS",
	StepShippingAddress: "SHIPPING_ADDRESS",
	StepPackaging:       "PACKAGING",
	StepCustoms:         "CUSTOMS",
	StepCarrier:         "CARRIER",
	StepPayment:         "PAYMENT",
	StepDone:            "DONE",
}

// String returns the upper-case step name, or UNKNOWN for invalid values.
func (s FlowStep) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return stepNames[StepUnknown]
}

// Validate rejects StepUnknown and out-of-range values.
func (s FlowStep) Validate() error {
	if s < StepOriginAddress || s > StepDone {
		return errs.NewValueIsInvalidErrorWithCause("step is invalid", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

// MarshalText encodes the step by name.
func (s FlowStep) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// StepSet is an immutable set of FlowSteps. The zero value is empty.
type StepSet uint16

// NewStepSet returns a set holding the valid steps among steps.
func NewStepSet(steps ...FlowStep) StepSet {
	var s StepSet
	for _, step := range steps {
		s = s.With(step)
	}
	return s
}

// With returns the union of s and {step}. Invalid steps are ignored.
func (s StepSet) With(step FlowStep) StepSet {
	if step.Validate() != nil {
		return s
	}
	return s | 1<<uint(step)
}

// Has reports whether step is in the set.
func (s StepSet) Has(step FlowStep) bool {
	return step.Validate() == nil && s&(1<<uint(step)) != 0
}

// Len returns the number of steps in the set.
func (s StepSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Contains reports whether every step of other is also in s.
func (s StepSet) Contains(other StepSet) bool {
	return s&other == other
}

// Steps returns the members in wizard order.
func (s StepSet) Steps() []FlowStep {
	steps := make([]FlowStep, 0, s.Len())
	for _, step := range AllSteps {
		if s.Has(step) {
			steps = append(steps, step)
		}
	}
	return steps
}

// String renders the set as {A, B}.
func (s StepSet) String() string {
	names := make([]string, 0, s.Len())
	for _, step := range s.Steps() {
		names = append(names, step.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}
