package jobs

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// TrackingSyncer runs one tracking synchronization pass.
type TrackingSyncer interface {
	Handle(ctx context.Context, cmd commands.SyncTrackingCommand) (commands.SyncTrackingResult, error)
}

// TrackingSyncJob polls the carriers for shipped packages on a cron schedule.
// A run that is still in progress when the next tick fires causes that tick to be skipped.
type TrackingSyncJob struct {
	handler  TrackingSyncer
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewTrackingSyncJob creates a job that calls handler on schedule (six-field cron spec, seconds first).
func NewTrackingSyncJob(handler TrackingSyncer, schedule string, logger *zap.Logger) *TrackingSyncJob {
	return &TrackingSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With(zap.String("component", "tracking_sync_job")),
	}
}

// Run executes a single synchronization pass.
func (j *TrackingSyncJob) Run(ctx context.Context) {
	result, err := j.handler.Handle(ctx, commands.NewSyncTrackingCommand())
	if err != nil {
		j.logger.Error("Tracking sync failed", zap.Error(err))
		return
	}
	if result.Checked == 0 {
		return
	}
	j.logger.Info("Tracking sync finished",
		zap.Int("checked", result.Checked),
		zap.Int("delivered", result.Delivered),
		zap.Int("failed", result.Failed),
	)
}

// Start schedules the job.
func (j *TrackingSyncJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Tracking sync job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *TrackingSyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Tracking sync job stopped")
}
