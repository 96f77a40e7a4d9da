package commands

import (
	"errors"
	"strings"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/pkg/errs"
	"shippinglabel/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers an order a label can be created for.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("1042", origin, shipping)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	origin   kernel.Address
	shipping kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order id and both addresses.
func NewCreateOrderCommand(orderID string, origin, shipping kernel.Address) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrigin(origin),
		cmd.setShipping(shipping),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

func (c CreateOrderCommand) Origin() kernel.Address {
	return c.origin
}

func (c CreateOrderCommand) Shipping() kernel.Address {
	return c.shipping
}

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin", err)
	}

	c.origin = origin
	return nil
}

func (c *CreateOrderCommand) setShipping(shipping kernel.Address) error {
	if err := shipping.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipping", err)
	}

	c.shipping = shipping
	return nil
}
