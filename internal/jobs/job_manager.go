package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// Schedules holds the cron specs of the background jobs. Specs have six fields, seconds first.
type Schedules struct {
	TrackingSync        string
	DelayedOrdersReport string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	trackingSyncJob        *TrackingSyncJob
	delayedOrdersReportJob *DelayedOrdersReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	syncer TrackingSyncer,
	delayed DelayedOrdersFinder,
	schedules Schedules,
	logger *zap.Logger,
) *JobManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobManager{
		trackingSyncJob:        NewTrackingSyncJob(syncer, schedules.TrackingSync, logger),
		delayedOrdersReportJob: NewDelayedOrdersReportJob(delayed, schedules.DelayedOrdersReport, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.trackingSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start tracking sync job: %w", err)
	}

	if err := jm.delayedOrdersReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.trackingSyncJob.Stop()
		return fmt.Errorf("failed to start delayed orders report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackingSyncJob.Stop()
	jm.delayedOrdersReportJob.Stop()
}
