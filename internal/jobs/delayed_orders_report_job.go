package jobs

import (
	"context"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DelayedOrdersFinder returns the orders that are past their estimated delivery date.
type DelayedOrdersFinder interface {
	Handle(ctx context.Context, query queries.GetDelayedOrdersQuery) ([]queries.OrderView, error)
}

// DelayedOrdersReportJob logs a warning for every shipped order that is running late,
// so that support can follow up with the carrier.
type DelayedOrdersReportJob struct {
	handler  DelayedOrdersFinder
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewDelayedOrdersReportJob creates the report job.
func NewDelayedOrdersReportJob(handler DelayedOrdersFinder, schedule string, logger *zap.Logger) *DelayedOrdersReportJob {
	return &DelayedOrdersReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With(zap.String("component", "delayed_orders_report_job")),
	}
}

// Run reports the delayed orders once and returns how many were found.
func (j *DelayedOrdersReportJob) Run(ctx context.Context) int {
	delayed, err := j.handler.Handle(ctx, queries.NewGetDelayedOrdersQuery())
	if err != nil {
		j.logger.Error("Delayed orders report failed", zap.Error(err))
		return 0
	}

	for _, o := range delayed {
		fields := []zap.Field{
			zap.String("order_id", o.ID.String()),
			zap.String("customer_id", o.CustomerID.String()),
			zap.String("carrier", o.CarrierName),
			zap.String("tracking_number", o.TrackingNumber),
		}
		if o.EstimatedDeliveryDate != nil {
			fields = append(fields, zap.Time("estimated_delivery_date", *o.EstimatedDeliveryDate))
		}
		j.logger.Warn("Order delivery is delayed", fields...)
	}
	return len(delayed)
}

// Start schedules the job.
func (j *DelayedOrdersReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Delayed orders report job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *DelayedOrdersReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Delayed orders report job stopped")
}
