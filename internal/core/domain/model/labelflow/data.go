package labelflow

import "shippinglabel/internal/core/domain/model/kernel"

// Data is the wizard snapshot carried by every state after loading. It is a
// value: transitions derive a modified copy, so two states never share it.
type Data struct {
	originAddress   kernel.Address
	shippingAddress kernel.Address
	stepsDone       StepSet
}

// NewData builds a snapshot with the given addresses and completed steps.
func NewData(origin, shipping kernel.Address, steps ...FlowStep) Data {
	return Data{
		originAddress:   origin,
		shippingAddress: shipping,
		stepsDone:       NewStepSet(steps...),
	}
}

// OriginAddress returns the address the parcel ships from.
func (d Data) OriginAddress() kernel.Address {
	return d.originAddress
}

// ShippingAddress returns the destination address.
func (d Data) ShippingAddress() kernel.Address {
	return d.shippingAddress
}

// StepsDone returns the completed wizard steps.
func (d Data) StepsDone() StepSet {
	return d.stepsDone
}

func (d Data) withOrigin(a kernel.Address) Data {
	d.originAddress = a
	return d
}

func (d Data) withShipping(a kernel.Address) Data {
	d.shippingAddress = a
	return d
}

func (d Data) withStep(step FlowStep) Data {
	d.stepsDone = d.stepsDone.With(step)
	return d
}
