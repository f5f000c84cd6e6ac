package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// MarkPackageReturnedCommandHandler moves a Shipped or Exception package to Returned.
// The order is left as it is; refunds go through the return flow.
type MarkPackageReturnedCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewMarkPackageReturnedCommandHandler(uowFactory ShipmentUoWFactory) MarkPackageReturnedCommandHandler {
	return MarkPackageReturnedCommandHandler{uowFactory: uowFactory}
}

func (h MarkPackageReturnedCommandHandler) Handle(ctx context.Context, cmd MarkPackageReturnedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changePackage(ctx, h.uowFactory, cmd.PackageID(), func(pkg *shipment.Package) error {
		return pkg.MarkReturned(cmd.Note())
	})
}
