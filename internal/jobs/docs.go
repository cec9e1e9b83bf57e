// Package jobs provides scheduled background tasks for fastfeet.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// NotificationCleanupJob deletes notifications that were read longer ago than
// the configured retention. Unread notifications are kept forever.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(purgeHandler, cfg.NotificationCleanupSchedule, cfg.NotificationRetention, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed cleanup pass is logged and retried on the next tick. A job that
// cannot start (bad schedule or retention) fails StartAll, which stops the
// jobs already running.
package jobs
