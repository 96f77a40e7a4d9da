package commands

import (
	"errors"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelflow"
	"shippinglabel/internal/pkg/errs"
	"shippinglabel/internal/pkg/guard"
)

var ErrHandleLabelFlowEventCommandIsNotConstructed = errors.New(
	"HandleLabelFlowEventCommand must be created via NewHandleLabelFlowEventCommand constructor",
)

// HandleLabelFlowEventCommand delivers one client event to a session.
type HandleLabelFlowEventCommand struct {
	sessionID kernel.UUID
	event     labelflow.Event
	guard     guard.ConstructorGuard
}

func NewHandleLabelFlowEventCommand(sessionID kernel.UUID, event labelflow.Event) (HandleLabelFlowEventCommand, error) {
	var eventErr error
	if event == nil {
		eventErr = errs.NewValueIsRequiredError("event")
	}
	if err := errors.Join(sessionID.Validate(), eventErr); err != nil {
		return HandleLabelFlowEventCommand{}, err
	}

	return HandleLabelFlowEventCommand{
		sessionID: sessionID,
		event:     event,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c HandleLabelFlowEventCommand) Validate() error {
	return c.guard.Validate(ErrHandleLabelFlowEventCommandIsNotConstructed)
}

func (c HandleLabelFlowEventCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c HandleLabelFlowEventCommand) Event() labelflow.Event {
	return c.event
}
