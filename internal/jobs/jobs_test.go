package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockTrackingSyncer struct {
	mock.Mock
}

func (m *MockTrackingSyncer) Handle(ctx context.Context, cmd commands.SyncTrackingCommand) (commands.SyncTrackingResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SyncTrackingResult), args.Error(1)
}

type MockDelayedOrdersFinder struct {
	mock.Mock
}

func (m *MockDelayedOrdersFinder) Handle(ctx context.Context, query queries.GetDelayedOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestTrackingSyncJob_Run_LogsCounts(t *testing.T) {
	syncer := &MockTrackingSyncer{}
	syncer.On("Handle", mock.Anything, mock.Anything).
		Return(commands.SyncTrackingResult{Checked: 3, Delivered: 2, Failed: 1}, nil).Once()
	logger, logs := observedLogger()

	NewTrackingSyncJob(syncer, "@every 1h", logger).Run(context.Background())

	entries := logs.FilterMessage("Tracking sync finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 3, fields["checked"])
	assert.EqualValues(t, 2, fields["delivered"])
	assert.EqualValues(t, 1, fields["failed"])
	syncer.AssertExpectations(t)
}

func TestTrackingSyncJob_Run_QuietWhenNothingShipped(t *testing.T) {
	syncer := &MockTrackingSyncer{}
	syncer.On("Handle", mock.Anything, mock.Anything).Return(commands.SyncTrackingResult{}, nil).Once()
	logger, logs := observedLogger()

	NewTrackingSyncJob(syncer, "@every 1h", logger).Run(context.Background())

	assert.Zero(t, logs.Len())
}

func TestTrackingSyncJob_Run_LogsFailure(t *testing.T) {
	syncer := &MockTrackingSyncer{}
	syncer.On("Handle", mock.Anything, mock.Anything).
		Return(commands.SyncTrackingResult{}, errors.New("db down")).Once()
	logger, logs := observedLogger()

	NewTrackingSyncJob(syncer, "@every 1h", logger).Run(context.Background())

	entries := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Tracking sync failed", entries[0].Message)
}

func TestDelayedOrdersReportJob_Run_WarnsPerOrder(t *testing.T) {
	eta := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	delayed := []queries.OrderView{
		{ID: kernel.NewUUID(), CustomerID: kernel.NewUUID(), CarrierName: "postal", TrackingNumber: "PS1", EstimatedDeliveryDate: &eta},
		{ID: kernel.NewUUID(), CustomerID: kernel.NewUUID(), CarrierName: "express", TrackingNumber: "EX1"},
	}
	finder := &MockDelayedOrdersFinder{}
	finder.On("Handle", mock.Anything, mock.Anything).Return(delayed, nil).Once()
	logger, logs := observedLogger()

	count := NewDelayedOrdersReportJob(finder, "@every 1h", logger).Run(context.Background())

	assert.Equal(t, 2, count)
	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 2)
	assert.Equal(t, delayed[0].ID.String(), warnings[0].ContextMap()["order_id"])
	assert.Contains(t, warnings[0].ContextMap(), "estimated_delivery_date")
	assert.NotContains(t, warnings[1].ContextMap(), "estimated_delivery_date")
}

func TestDelayedOrdersReportJob_Run_LogsFailure(t *testing.T) {
	finder := &MockDelayedOrdersFinder{}
	finder.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
	logger, logs := observedLogger()

	count := NewDelayedOrdersReportJob(finder, "@every 1h", logger).Run(context.Background())

	assert.Zero(t, count)
	assert.Equal(t, 1, logs.FilterMessage("Delayed orders report failed").Len())
}

func TestJobManager_StartAll_RejectsInvalidSchedule(t *testing.T) {
	jm := NewJobManager(&MockTrackingSyncer{}, &MockDelayedOrdersFinder{}, Schedules{
		TrackingSync:        "0 */15 * * * *",
		DelayedOrdersReport: "not a schedule",
	}, nil)

	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "delayed orders report job")
}

func TestJobManager_StartAndStop(t *testing.T) {
	logger, logs := observedLogger()
	jm := NewJobManager(&MockTrackingSyncer{}, &MockDelayedOrdersFinder{}, Schedules{
		TrackingSync:        "0 0 */6 * * *",
		DelayedOrdersReport: "0 0 8 * * *",
	}, logger)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Equal(t, 1, logs.FilterMessage("Tracking sync job stopped").Len())
	assert.Equal(t, 1, logs.FilterMessage("Delayed orders report job stopped").Len())
}
