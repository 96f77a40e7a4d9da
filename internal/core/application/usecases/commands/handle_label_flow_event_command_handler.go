package commands

import (
	"context"
	"fmt"
	"log/slog"

	"shippinglabel/internal/core/application/labelsession"
	"shippinglabel/internal/core/domain/model/order"
)

// HandleLabelFlowEventCommandHandler dispatches a client event. When the
// event completes the flow, the order is marked Labeled.
//
// Errors:
//   - errs.ObjectNotFoundError for an unknown session
//   - *labelflow.ProtocolViolationError when the session's state does not
//     accept the event; nothing changes
type HandleLabelFlowEventCommandHandler struct {
	sessions   SessionFinder
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewHandleLabelFlowEventCommandHandler(
	sessions SessionFinder,
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) HandleLabelFlowEventCommandHandler {
	return HandleLabelFlowEventCommandHandler{
		sessions:   sessions,
		uowFactory: uowFactory,
		logger:     logger.With("component", "HandleLabelFlowEventCommandHandler"),
	}
}

func (h HandleLabelFlowEventCommandHandler) Handle(
	ctx context.Context,
	cmd HandleLabelFlowEventCommand,
) (labelsession.View, error) {
	if err := cmd.Validate(); err != nil {
		return labelsession.View{}, err
	}

	s, err := h.sessions.Get(cmd.SessionID())
	if err != nil {
		return labelsession.View{}, err
	}

	wasCompleted := s.View().Completed()
	if err = s.Dispatch(cmd.Event()); err != nil {
		return labelsession.View{}, err
	}

	view := s.View()
	if view.Completed() && !wasCompleted {
		if err = h.markLabeled(ctx, view.OrderID); err != nil {
			return view, fmt.Errorf("label flow completed but order was not updated: %w", err)
		}
		h.logger.InfoContext(ctx, "Order labeled",
			slog.String("session_id", view.ID.String()),
			slog.String("order_id", view.OrderID))
	}

	return view, nil
}

func (h HandleLabelFlowEventCommandHandler) markLabeled(ctx context.Context, orderID string) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	// A second flow for the same order may finish after the first one.
	if o.Status() == order.Labeled {
		return nil
	}
	if err = o.MarkLabeled(); err != nil {
		return err
	}
	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
