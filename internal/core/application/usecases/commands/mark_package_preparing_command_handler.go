package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// MarkPackagePreparingCommandHandler moves a package to Preparing.
type MarkPackagePreparingCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      kernel.Clock
}

// NewMarkPackagePreparingCommandHandler creates a MarkPackagePreparingCommandHandler.
func NewMarkPackagePreparingCommandHandler(uowFactory ShipmentUoWFactory, clock kernel.Clock) MarkPackagePreparingCommandHandler {
	return MarkPackagePreparingCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle records the preparer. Packages past Preparing fail with errs.ErrInvalidStateTransition.
func (h MarkPackagePreparingCommandHandler) Handle(ctx context.Context, cmd MarkPackagePreparingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changePackage(ctx, h.uowFactory, cmd.PackageID(), func(pkg *shipment.Package) error {
		return pkg.MarkPreparing(cmd.AdminID(), h.clock.Now())
	})
}
