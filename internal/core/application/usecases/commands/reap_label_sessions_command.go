package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shippinglabel/internal/pkg/errs"
	"shippinglabel/internal/pkg/guard"
)

var ErrReapLabelSessionsCommandIsNotConstructed = errors.New(
	"ReapLabelSessionsCommand must be created via NewReapLabelSessionsCommand constructor",
)

// ReapLabelSessionsCommand closes sessions idle for longer than IdleFor.
type ReapLabelSessionsCommand struct {
	idleFor time.Duration
	guard   guard.ConstructorGuard
}

func NewReapLabelSessionsCommand(idleFor time.Duration) (ReapLabelSessionsCommand, error) {
	if idleFor <= 0 {
		return ReapLabelSessionsCommand{}, errs.NewValueIsInvalidErrorWithCause("idleFor", fmt.Errorf("%s is not greater than 0", idleFor))
	}
	return ReapLabelSessionsCommand{idleFor: idleFor, guard: guard.NewConstructorGuard()}, nil
}

func (c ReapLabelSessionsCommand) Validate() error {
	return c.guard.Validate(ErrReapLabelSessionsCommandIsNotConstructed)
}

func (c ReapLabelSessionsCommand) IdleFor() time.Duration {
	return c.idleFor
}

// ReapLabelSessionsCommandHandler evicts idle sessions from the registry.
type ReapLabelSessionsCommandHandler struct {
	sessions SessionReaper
	logger   *slog.Logger
}

func NewReapLabelSessionsCommandHandler(sessions SessionReaper, logger *slog.Logger) ReapLabelSessionsCommandHandler {
	return ReapLabelSessionsCommandHandler{sessions: sessions, logger: logger.With("component", "ReapLabelSessionsCommandHandler")}
}

// Handle returns the number of sessions closed.
func (h ReapLabelSessionsCommandHandler) Handle(ctx context.Context, cmd ReapLabelSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	n := h.sessions.Reap(cmd.IdleFor())
	if n > 0 {
		h.logger.InfoContext(ctx, "Reaped idle label sessions", slog.Int("count", n))
	}
	return n, nil
}
