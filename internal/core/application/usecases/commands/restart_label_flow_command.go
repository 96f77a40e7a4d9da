package commands

import (
	"errors"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/pkg/guard"
)

var ErrRestartLabelFlowCommandIsNotConstructed = errors.New(
	"RestartLabelFlowCommand must be created via NewRestartLabelFlowCommand constructor",
)

// RestartLabelFlowCommand drops a session's progress and starts its flow again.
type RestartLabelFlowCommand struct {
	sessionID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewRestartLabelFlowCommand(sessionID kernel.UUID) (RestartLabelFlowCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return RestartLabelFlowCommand{}, err
	}
	return RestartLabelFlowCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (c RestartLabelFlowCommand) Validate() error {
	return c.guard.Validate(ErrRestartLabelFlowCommandIsNotConstructed)
}

func (c RestartLabelFlowCommand) SessionID() kernel.UUID {
	return c.sessionID
}
