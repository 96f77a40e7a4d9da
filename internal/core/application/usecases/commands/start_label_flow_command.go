package commands

import (
	"errors"
	"strings"

	"shippinglabel/internal/pkg/errs"
	"shippinglabel/internal/pkg/guard"
)

var ErrStartLabelFlowCommandIsNotConstructed = errors.New(
	"StartLabelFlowCommand must be created via NewStartLabelFlowCommand constructor",
)

// StartLabelFlowCommand opens a label session for an order.
type StartLabelFlowCommand struct {
	orderID string
	guard   guard.ConstructorGuard
}

// NewStartLabelFlowCommand requires a non-blank order id.
func NewStartLabelFlowCommand(orderID string) (StartLabelFlowCommand, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return StartLabelFlowCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	return StartLabelFlowCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c StartLabelFlowCommand) Validate() error {
	return c.guard.Validate(ErrStartLabelFlowCommandIsNotConstructed)
}

func (c StartLabelFlowCommand) OrderID() string {
	return c.orderID
}
