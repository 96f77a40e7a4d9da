package order

import (
	"errors"
	"strings"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/pkg/errs"
)

// IDMaxLength is the longest accepted order id.
const IDMaxLength = 64

// ErrOrderIsNotConstructed is returned by Validate for an Order not built by
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate a shipping label is created for. It owns the two
// addresses the label flow starts from.
//
// Invariants:
//   - id is non-blank and at most IDMaxLength characters
//   - origin and shipping are constructed addresses
//   - status is Pending or Labeled
type Order struct {
	id       string
	origin   kernel.Address
	shipping kernel.Address
	status   Status

	isConstructed bool
}

// NewOrder creates a Pending order.
//
// Example:
//
//	o, err := order.NewOrder("1042", origin, shipping)
func NewOrder(id string, origin, shipping kernel.Address) (*Order, error) {
	return RestoreOrder(id, origin, shipping, Pending)
}

// RestoreOrder rebuilds an order loaded from storage.
func RestoreOrder(id string, origin, shipping kernel.Address, status Status) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setOrigin(origin),
		o.setShipping(shipping),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate reports ErrOrderIsNotConstructed for nil or zero-value orders.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() string {
	return o.id
}

// Origin returns the address the parcel ships from.
func (o *Order) Origin() kernel.Address {
	return o.origin
}

// Shipping returns the destination address.
func (o *Order) Shipping() kernel.Address {
	return o.shipping
}

func (o *Order) Status() Status {
	return o.status
}

// MarkLabeled records that a label was paid for. It fails unless the order
// is Pending.
func (o *Order) MarkLabeled() error {
	next, err := o.status.MarkLabeled()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	if len(id) > IDMaxLength {
		return errs.NewValueIsOutOfRangeError("id length", len(id), 1, IDMaxLength)
	}
	o.id = id
	return nil
}

func (o *Order) setOrigin(a kernel.Address) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("origin", err)
	}
	o.origin = a
	return nil
}

func (o *Order) setShipping(a kernel.Address) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shipping", err)
	}
	o.shipping = a
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}
