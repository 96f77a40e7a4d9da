package commands

import (
	"context"

	"shippinglabel/internal/core/application/labelsession"
)

// RestartLabelFlowCommandHandler resets a session and starts it again for
// the same order. This is how a flow leaves DataLoadingFailure.
type RestartLabelFlowCommandHandler struct {
	sessions SessionFinder
}

func NewRestartLabelFlowCommandHandler(sessions SessionFinder) RestartLabelFlowCommandHandler {
	return RestartLabelFlowCommandHandler{sessions: sessions}
}

func (h RestartLabelFlowCommandHandler) Handle(_ context.Context, cmd RestartLabelFlowCommand) (labelsession.View, error) {
	if err := cmd.Validate(); err != nil {
		return labelsession.View{}, err
	}

	s, err := h.sessions.Get(cmd.SessionID())
	if err != nil {
		return labelsession.View{}, err
	}
	if err = s.Restart(); err != nil {
		return labelsession.View{}, err
	}
	return s.View(), nil
}
