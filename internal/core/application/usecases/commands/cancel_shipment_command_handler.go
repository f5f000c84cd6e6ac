package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

// ErrCancellationRefused is the cause reported when the carrier declined to cancel,
// typically because it already has the parcel.
var ErrCancellationRefused = errors.New("carrier refused cancellation")

// CancelShipmentCommandHandler cancels the label with whichever carrier issued it and
// returns the package to Preparing.
type CancelShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	carriers   ShipmentCanceller
	clock      kernel.Clock
}

// NewCancelShipmentCommandHandler creates a CancelShipmentCommandHandler.
func NewCancelShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	carriers ShipmentCanceller,
	clock kernel.Clock,
) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		carriers:   carriers,
		clock:      clock,
	}
}

// Handle only contacts carriers for ReadyToShip packages. A refusal fails with
// errs.ErrInvalidStateTransition (cause ErrCancellationRefused) and changes nothing.
func (h CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
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
	if pkg.Status() != shipment.ReadyToShip {
		return errs.NewInvalidStateTransitionError("package", pkg.Status().String(), shipment.Preparing.String())
	}

	cancelled, err := h.carriers.Cancel(ctx, pkg.TrackingNumber())
	if err != nil {
		return err
	}
	if !cancelled {
		return errs.NewInvalidStateTransitionErrorWithCause(
			"package", pkg.Status().String(), shipment.Preparing.String(), ErrCancellationRefused)
	}

	if err = pkg.CancelLabel(h.clock.Now()); err != nil {
		return err
	}

	if _, err = NewShipmentEventHandler().Apply(ctx, uow.OrderRepository(), pkg.PullEvents()); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
