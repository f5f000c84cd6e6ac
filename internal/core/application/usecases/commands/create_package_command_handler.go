package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderNotFulfillable is the cause reported when a package is opened for an order
// that is no longer Pending or Processing.
var ErrOrderNotFulfillable = errors.New("order is not awaiting fulfillment")

// CreatePackageCommandHandler opens the single package of an order.
type CreatePackageCommandHandler struct {
	uowFactory ShipmentUoWFactory
	carriers   CarrierSupport
}

// NewCreatePackageCommandHandler creates a CreatePackageCommandHandler.
func NewCreatePackageCommandHandler(uowFactory ShipmentUoWFactory, carriers CarrierSupport) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
		carriers:   carriers,
	}
}

// Handle fails with errs.ErrUnsupportedCarrier for carriers without an integration and
// with errs.ErrObjectAlreadyExists (cause shipment.ErrPackageAlreadyExists) when the
// order already has a package. The package copies the order's shipping address.
func (h CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !h.carriers.Supports(cmd.Carrier()) {
		return errs.NewUnsupportedCarrierError(cmd.Carrier().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if o.Status() != order.Pending && o.Status() != order.Processing {
		return errs.NewInvalidStateTransitionErrorWithCause(
			"order", o.Status().String(), "Fulfillment", ErrOrderNotFulfillable)
	}

	packageRepo := uow.PackageRepository()
	_, err = packageRepo.GetByOrder(ctx, o.ID())
	switch {
	case err == nil:
		return errs.NewObjectAlreadyExistsErrorWithCause("package", o.ID(), shipment.ErrPackageAlreadyExists)
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	pkg, err := shipment.NewPackage(
		cmd.PackageID(),
		o.ID(),
		cmd.Dimensions(),
		cmd.Carrier(),
		o.ShippingAddress(),
		cmd.PickupPointID(),
	)
	if err != nil {
		return err
	}

	if err = packageRepo.Add(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
