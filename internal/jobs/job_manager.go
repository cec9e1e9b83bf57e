package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []Job
	started []Job
}

// NewJobManager creates a job manager running the notification cleanup on schedule.
func NewJobManager(
	purgeHandler PurgeHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return NewJobManagerWith(NewNotificationCleanupJob(purgeHandler, schedule, retention, logger))
}

// NewJobManagerWith creates a job manager for the given jobs, started in order.
func NewJobManagerWith(jobs ...Job) *JobManager {
	return &JobManager{jobs: jobs}
}

// StartAll starts all scheduled jobs.
// If one fails, the jobs already started are stopped and the error is returned.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
		jm.started = append(jm.started, job)
	}
	return nil
}

// StopAll stops the started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
