package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// changePackage runs mutate on a package inside one transaction, applies the events it
// recorded to the order and persists both.
func changePackage(
	ctx context.Context,
	uowFactory ShipmentUoWFactory,
	packageID kernel.UUID,
	mutate func(pkg *shipment.Package) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	pkg, err := packageRepo.Get(ctx, packageID)
	if err != nil {
		return err
	}

	if err = mutate(pkg); err != nil {
		return err
	}

	if events := pkg.PullEvents(); len(events) > 0 {
		if _, err = NewShipmentEventHandler().Apply(ctx, uow.OrderRepository(), events); err != nil {
			return err
		}
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
