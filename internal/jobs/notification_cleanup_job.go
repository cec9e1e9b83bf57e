package jobs

import (
	"context"
	"log/slog"
	"time"

	"fastfeet/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultCleanupSchedule runs the cleanup at minute 0 of every hour.
const DefaultCleanupSchedule = "0 0 * * * *"

// PurgeHandler removes read notifications older than the command's retention.
type PurgeHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeReadNotificationsCommand) (int64, error)
}

// NotificationCleanupJob periodically deletes notifications that were read
// more than retention ago. Unread notifications are never removed.
type NotificationCleanupJob struct {
	handler   PurgeHandler
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewNotificationCleanupJob(
	handler PurgeHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *NotificationCleanupJob {
	if schedule == "" {
		schedule = DefaultCleanupSchedule
	}
	return &NotificationCleanupJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "notification_cleanup_job"),
	}
}

// Start validates the retention and schedule, then starts the cron scheduler.
func (j *NotificationCleanupJob) Start() error {
	if _, err := commands.NewPurgeReadNotificationsCommand(j.retention); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification cleanup job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Run performs one cleanup pass.
func (j *NotificationCleanupJob) Run(ctx context.Context) {
	cmd, err := commands.NewPurgeReadNotificationsCommand(j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification cleanup job misconfigured", "error", err)
		return
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification cleanup job failed", "error", err)
		return
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Purged read notifications", "count", removed)
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *NotificationCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification cleanup job stopped")
}
