package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"go.uber.org/zap"
)

// GenerateLabelCommandHandler obtains a label from the carrier and stores it on the package.
//
// Example:
//
//	router := services.NewCarrierRouter(5*time.Second, postal, express, pickup, api)
//	handler := NewGenerateLabelCommandHandler(uowFactory, router, warehouse, clock, logger)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, shipment.ErrLabelAlreadyGenerated) {
//	    // the package is already ReadyToShip
//	}
type GenerateLabelCommandHandler struct {
	uowFactory ShipmentUoWFactory
	carriers   LabelCarrier
	warehouse  kernel.Address
	clock      kernel.Clock
	logger     *zap.Logger
}

// NewGenerateLabelCommandHandler creates a handler that ships from the warehouse address.
func NewGenerateLabelCommandHandler(
	uowFactory ShipmentUoWFactory,
	carriers LabelCarrier,
	warehouse kernel.Address,
	clock kernel.Clock,
	logger *zap.Logger,
) GenerateLabelCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return GenerateLabelCommandHandler{
		uowFactory: uowFactory,
		carriers:   carriers,
		warehouse:  warehouse,
		clock:      clock,
		logger:     logger.With(zap.String("component", "generate_label")),
	}
}

// Handle fails with errs.ErrInvalidStateTransition (cause shipment.ErrLabelAlreadyGenerated)
// for a ReadyToShip package, and with cause ErrOrderNotFulfillable when the order is no
// longer Pending or Processing. Both are checked before the carrier is called.
//
// The package is written only after the carrier answered; a failed or cancelled call rolls
// back and leaves it as it was. When the label cannot be stored after the carrier issued
// it, the handler asks the carrier to cancel that tracking number and returns the store error.
func (h GenerateLabelCommandHandler) Handle(ctx context.Context, cmd GenerateLabelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	pkg, err := packageRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}
	if err = pkg.CanGenerateLabel(); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, pkg.OrderID())
	if err != nil {
		return err
	}
	if o.Status() != order.Pending && o.Status() != order.Processing {
		return errs.NewInvalidStateTransitionErrorWithCause(
			"order", o.Status().String(), "LabelGenerated", ErrOrderNotFulfillable)
	}

	resp, err := h.carriers.GenerateLabel(ctx, pkg.LabelRequest(h.warehouse))
	if err != nil {
		return err
	}

	if err = h.store(ctx, uow, orderRepo, packageRepo, pkg, resp); err != nil {
		h.withdraw(ctx, pkg, resp, err)
		return err
	}

	h.logger.Info("label stored",
		zap.String("package_id", pkg.ID().String()),
		zap.String("tracking_number", resp.TrackingNumber),
		zap.Bool("simulated", resp.Simulated),
	)
	return nil
}

func (h GenerateLabelCommandHandler) store(
	ctx context.Context,
	tx TxManager,
	orderRepo ports.OrderRepository,
	packageRepo ports.PackageRepository,
	pkg *shipment.Package,
	resp carrier.LabelResponse,
) error {
	if err := pkg.ApplyLabel(resp, h.clock.Now()); err != nil {
		return err
	}

	if _, err := NewShipmentEventHandler().Apply(ctx, orderRepo, pkg.PullEvents()); err != nil {
		return err
	}

	if err := packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// withdraw cancels an issued label that was not stored. Failures are only logged.
func (h GenerateLabelCommandHandler) withdraw(
	ctx context.Context,
	pkg *shipment.Package,
	resp carrier.LabelResponse,
	cause error,
) {
	if resp.TrackingNumber == "" {
		return
	}

	logger := h.logger.With(
		zap.String("package_id", pkg.ID().String()),
		zap.String("tracking_number", resp.TrackingNumber),
		zap.NamedError("cause", cause),
	)

	cancelled, err := h.carriers.Cancel(context.WithoutCancel(ctx), resp.TrackingNumber)
	switch {
	case err != nil:
		logger.Warn("issued label not stored, cancel failed", zap.Error(err))
	case !cancelled:
		logger.Warn("issued label not stored, carrier refused cancel")
	default:
		logger.Info("issued label not stored, cancelled at carrier")
	}
}
