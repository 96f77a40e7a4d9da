package commands

import (
	"context"
	"log/slog"

	"shippinglabel/internal/core/application/labelsession"
)

// StartLabelFlowCommandHandler opens a session and starts its flow. The
// order is not looked up here: a missing order surfaces as the flow's
// DataLoadingFailure state once the loader runs.
//
// Example:
//
//	cmd, _ := NewStartLabelFlowCommand("1042")
//	view, err := handler.Handle(ctx, cmd)
//	// view.ID identifies the session, view.Effect is LoadData
type StartLabelFlowCommandHandler struct {
	sessions SessionOpener
	logger   *slog.Logger
}

func NewStartLabelFlowCommandHandler(sessions SessionOpener, logger *slog.Logger) StartLabelFlowCommandHandler {
	return StartLabelFlowCommandHandler{sessions: sessions, logger: logger.With("component", "StartLabelFlowCommandHandler")}
}

func (h StartLabelFlowCommandHandler) Handle(ctx context.Context, cmd StartLabelFlowCommand) (labelsession.View, error) {
	if err := cmd.Validate(); err != nil {
		return labelsession.View{}, err
	}

	s, err := h.sessions.Open(cmd.OrderID())
	if err != nil {
		return labelsession.View{}, err
	}

	h.logger.InfoContext(ctx, "Label flow started",
		slog.String("session_id", s.ID().String()),
		slog.String("order_id", cmd.OrderID()))
	return s.View(), nil
}
