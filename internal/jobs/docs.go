// Package jobs provides scheduled background tasks for the order tracking service.
//
// Jobs use github.com/robfig/cron/v3 with standard five-field expressions.
//
// # Available Jobs
//
// DuePickupsJob runs once a day (07:00 by default, DUE_PICKUPS_SCHEDULE to
// override) and logs the open orders to be collected that day.
//
// # Usage
//
//	dueJob := jobs.NewDuePickupsJob(root.CreateGetDuePickupsQueryHandler(), cfg.DuePickupsSchedule, logger)
//	jobManager := jobs.NewJobManager(dueJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs log failures and keep their schedule; a failed run is retried at the
// next tick.
package jobs
