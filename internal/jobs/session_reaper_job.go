package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shippinglabel/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionReaper is the use case the reaper job runs.
type SessionReaper interface {
	Handle(ctx context.Context, cmd commands.ReapLabelSessionsCommand) (int, error)
}

// SessionReaperJob periodically closes label sessions nobody has touched
// for IdleFor.
type SessionReaperJob struct {
	handler  SessionReaper
	cmd      commands.ReapLabelSessionsCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionReaperJob creates the job. schedule is a six-field cron
// expression (seconds first).
func NewSessionReaperJob(
	handler SessionReaper,
	schedule string,
	idleFor time.Duration,
	logger *slog.Logger,
) (*SessionReaperJob, error) {
	cmd, err := commands.NewReapLabelSessionsCommand(idleFor)
	if err != nil {
		return nil, err
	}

	return &SessionReaperJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_reaper_job"),
	}, nil
}

// Start schedules the job.
func (j *SessionReaperJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session reaper job started",
		slog.String("schedule", j.schedule),
		slog.Duration("idle_for", j.cmd.IdleFor()))
	return nil
}

// Run reaps once.
func (j *SessionReaperJob) Run(ctx context.Context) {
	if _, err := j.handler.Handle(ctx, j.cmd); err != nil {
		j.logger.ErrorContext(ctx, "Session reaper job failed", "error", err)
	}
}

// Stop stops scheduling and waits for a running reap to finish.
func (j *SessionReaperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session reaper job stopped")
}
