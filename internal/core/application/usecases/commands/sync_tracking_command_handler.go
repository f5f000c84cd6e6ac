package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"

	"go.uber.org/zap"
)

// SyncTrackingCommandHandler asks the carriers about every Shipped package and marks
// the ones they report as delivered. Each delivery is its own transaction so that one
// failing package does not hold back the others.
type SyncTrackingCommandHandler struct {
	uowFactory ShipmentUoWFactory
	tracking   TrackingProvider
	logger     *zap.Logger
}

// NewSyncTrackingCommandHandler creates a SyncTrackingCommandHandler.
func NewSyncTrackingCommandHandler(
	uowFactory ShipmentUoWFactory,
	tracking TrackingProvider,
	logger *zap.Logger,
) SyncTrackingCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return SyncTrackingCommandHandler{
		uowFactory: uowFactory,
		tracking:   tracking,
		logger:     logger.With(zap.String("component", "tracking_sync")),
	}
}

// Handle returns an error only when the shipped packages cannot be listed. Carrier and
// persistence failures of single packages are logged and counted in Failed.
func (h SyncTrackingCommandHandler) Handle(ctx context.Context, cmd SyncTrackingCommand) (SyncTrackingResult, error) {
	if err := cmd.Validate(); err != nil {
		return SyncTrackingResult{}, err
	}

	shipped, err := h.uowFactory.Create().PackageRepository().ListByStatus(ctx, shipment.Shipped)
	if err != nil {
		return SyncTrackingResult{}, err
	}

	var result SyncTrackingResult
	for _, pkg := range shipped {
		if err = ctx.Err(); err != nil {
			return result, err
		}
		result.Checked++

		logger := h.logger.With(
			zap.String("package_id", pkg.ID().String()),
			zap.String("tracking_number", pkg.TrackingNumber()),
		)

		info, err := h.tracking.TrackingInfo(ctx, pkg.TrackingNumber())
		if err != nil {
			result.Failed++
			logger.Warn("tracking lookup failed", zap.Error(err))
			continue
		}
		if !info.IsDelivered() {
			continue
		}

		deliveredAt := *info.DeliveredAt
		err = changePackage(ctx, h.uowFactory, pkg.ID(), func(p *shipment.Package) error {
			return p.MarkDelivered(deliveredAt)
		})
		if err != nil {
			result.Failed++
			logger.Error("failed to record delivery", zap.Error(err))
			continue
		}

		result.Delivered++
		logger.Info("package delivered", zap.Time("delivered_at", deliveredAt))
	}

	return result, nil
}
