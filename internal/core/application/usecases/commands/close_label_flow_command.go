package commands

import (
	"context"
	"errors"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/pkg/guard"
)

var ErrCloseLabelFlowCommandIsNotConstructed = errors.New(
	"CloseLabelFlowCommand must be created via NewCloseLabelFlowCommand constructor",
)

// CloseLabelFlowCommand abandons a session.
type CloseLabelFlowCommand struct {
	sessionID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewCloseLabelFlowCommand(sessionID kernel.UUID) (CloseLabelFlowCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return CloseLabelFlowCommand{}, err
	}
	return CloseLabelFlowCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (c CloseLabelFlowCommand) Validate() error {
	return c.guard.Validate(ErrCloseLabelFlowCommandIsNotConstructed)
}

func (c CloseLabelFlowCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// CloseLabelFlowCommandHandler closes a session and cancels its pending
// collaborator calls.
type CloseLabelFlowCommandHandler struct {
	sessions SessionCloser
}

func NewCloseLabelFlowCommandHandler(sessions SessionCloser) CloseLabelFlowCommandHandler {
	return CloseLabelFlowCommandHandler{sessions: sessions}
}

func (h CloseLabelFlowCommandHandler) Handle(_ context.Context, cmd CloseLabelFlowCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.sessions.Close(cmd.SessionID())
}
