// Package jobs provides scheduled background tasks for the fulfillment service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and use six-field specs with a leading
// seconds field. A tick that fires while the previous run of the same job is still busy
// is skipped.
//
// # Available Jobs
//
//  1. TrackingSyncJob asks the carriers about every shipped package and marks the delivered ones.
//  2. DelayedOrdersReportJob logs a warning for each shipped order past its estimated delivery date.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(syncTrackingHandler, delayedOrdersHandler, jobs.Schedules{
//		TrackingSync:        "0 */15 * * * *",
//		DelayedOrdersReport: "0 0 8 * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged at Error and never stop the scheduler. Per-package failures of
// the tracking sync are counted in its result and logged by the handler itself.
package jobs
