package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"

	"go.uber.org/zap"
)

// MarkPackageShippedCommandHandler ships a package, moves its order to Shipped and sends
// the shipment notification at most once.
type MarkPackageShippedCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gate       ports.NotificationGate
	notifier   ports.ShipmentNotifier
	clock      kernel.Clock
	logger     *zap.Logger
}

// NewMarkPackageShippedCommandHandler creates a MarkPackageShippedCommandHandler.
func NewMarkPackageShippedCommandHandler(
	uowFactory ShipmentUoWFactory,
	gate ports.NotificationGate,
	notifier ports.ShipmentNotifier,
	clock kernel.Clock,
	logger *zap.Logger,
) MarkPackageShippedCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return MarkPackageShippedCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		notifier:   notifier,
		clock:      clock,
		logger:     logger.With(zap.String("component", "mark_shipped")),
	}
}

// Handle fails with shipment.ErrMissingTrackingNumber before a label exists and with
// errs.ErrInvalidStateTransition (cause shipment.ErrNotReadyToShip) for a package that is
// not ReadyToShip, so a second call never reaches the notification step.
//
// The notification is dispatched only after the shipment is committed, and the package's
// notification flag is then stored in a short transaction of its own. Notification problems
// never fail the shipment. The gate is claimed before dispatch; a package whose gate is
// already claimed is not notified again.
func (h MarkPackageShippedCommandHandler) Handle(ctx context.Context, cmd MarkPackageShippedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()
	o, pkg, err := h.ship(ctx, cmd.PackageID(), now)
	if err != nil {
		return err
	}

	if h.notify(ctx, o, pkg, now) {
		h.recordNotification(ctx, pkg.ID(), now)
	}
	return nil
}

func (h MarkPackageShippedCommandHandler) ship(
	ctx context.Context,
	packageID kernel.UUID,
	now time.Time,
) (*order.Order, *shipment.Package, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	pkg, err := packageRepo.Get(ctx, packageID)
	if err != nil {
		return nil, nil, err
	}

	if err = pkg.MarkShipped(now); err != nil {
		return nil, nil, err
	}

	orders, err := NewShipmentEventHandler().Apply(ctx, uow.OrderRepository(), pkg.PullEvents())
	if err != nil {
		return nil, nil, err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}
	return orders[pkg.OrderID()], pkg, nil
}

// recordNotification sets the notification flag on the committed package. The gate already
// holds the claim, so a failure here is logged and does not lead to a second notification.
func (h MarkPackageShippedCommandHandler) recordNotification(ctx context.Context, packageID kernel.UUID, now time.Time) {
	err := changePackage(ctx, h.uowFactory, packageID, func(pkg *shipment.Package) error {
		pkg.RecordNotificationSent(now)
		return nil
	})
	if err != nil {
		h.logger.Error("shipment notification sent but flag not stored",
			zap.String("package_id", packageID.String()),
			zap.Error(err),
		)
	}
}

// notify reports whether the notification was dispatched.
func (h MarkPackageShippedCommandHandler) notify(ctx context.Context, o *order.Order, pkg *shipment.Package, now time.Time) bool {
	logger := h.logger.With(zap.String("package_id", pkg.ID().String()))

	sent, err := h.gate.HasSent(ctx, pkg)
	if err != nil {
		logger.Warn("notification gate unavailable, skipping notification", zap.Error(err))
		return false
	}
	if sent {
		logger.Debug("shipment notification already sent")
		return false
	}

	claimed, err := h.gate.MarkSent(ctx, pkg, now)
	if err != nil {
		logger.Warn("notification gate unavailable, skipping notification", zap.Error(err))
		return false
	}
	if !claimed {
		logger.Debug("shipment notification claimed by another caller")
		return false
	}

	if err = h.notifier.NotifyShipped(ctx, o, pkg); err != nil {
		logger.Error("shipment notification failed", zap.Error(err))
		return false
	}
	return true
}
