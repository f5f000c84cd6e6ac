package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// MarkPackageDeliveredCommandHandler delivers a package. The order becomes Delivered at
// the same instant, which starts its return window.
type MarkPackageDeliveredCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      kernel.Clock
}

// NewMarkPackageDeliveredCommandHandler creates a MarkPackageDeliveredCommandHandler.
func NewMarkPackageDeliveredCommandHandler(uowFactory ShipmentUoWFactory, clock kernel.Clock) MarkPackageDeliveredCommandHandler {
	return MarkPackageDeliveredCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle accepts Shipped and Exception packages.
func (h MarkPackageDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkPackageDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	at := cmd.DeliveredAt()
	if at.IsZero() {
		at = h.clock.Now()
	}

	return changePackage(ctx, h.uowFactory, cmd.PackageID(), func(pkg *shipment.Package) error {
		return pkg.MarkDelivered(at)
	})
}
