package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// MarkPackageExceptionCommandHandler moves a shipped package to Exception.
type MarkPackageExceptionCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewMarkPackageExceptionCommandHandler(uowFactory ShipmentUoWFactory) MarkPackageExceptionCommandHandler {
	return MarkPackageExceptionCommandHandler{uowFactory: uowFactory}
}

func (h MarkPackageExceptionCommandHandler) Handle(ctx context.Context, cmd MarkPackageExceptionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changePackage(ctx, h.uowFactory, cmd.PackageID(), func(pkg *shipment.Package) error {
		return pkg.MarkException(cmd.Note())
	})
}
