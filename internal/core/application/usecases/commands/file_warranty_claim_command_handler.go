package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warranty"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// FileWarrantyClaimCommandHandler files a claim when the warranty policy allows it.
type FileWarrantyClaimCommandHandler struct {
	uowFactory WarrantyUoWFactory
	catalog    ports.ProductCatalog
	policy     services.WarrantyPolicy
	clock      kernel.Clock
}

// NewFileWarrantyClaimCommandHandler creates a FileWarrantyClaimCommandHandler.
func NewFileWarrantyClaimCommandHandler(
	uowFactory WarrantyUoWFactory,
	catalog ports.ProductCatalog,
	policy services.WarrantyPolicy,
	clock kernel.Clock,
) FileWarrantyClaimCommandHandler {
	return FileWarrantyClaimCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		policy:     policy,
		clock:      clock,
	}
}

// Handle fails with errs.ErrForbidden for somebody else's order and with
// errs.ErrPolicyViolation carrying PRODUCT_NOT_IN_ORDER, NO_WARRANTY_COVERAGE,
// WARRANTY_EXPIRED or CLAIM_ALREADY_EXISTS. A concurrent duplicate that slips past the
// policy is rejected by the repository with errs.ErrObjectAlreadyExists.
func (h FileWarrantyClaimCommandHandler) Handle(ctx context.Context, cmd FileWarrantyClaimCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !cmd.Actor().CanAccess(o.CustomerID()) {
		return errs.NewForbiddenError(cmd.Actor().ID.String(), "order", o.ID())
	}

	product, err := h.catalog.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	claimRepo := uow.WarrantyClaimRepository()
	existing, err := claimRepo.FindByOrderAndProduct(ctx, o.ID(), product.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	now := h.clock.Now()
	if err = h.policy.CheckFile(o, product, existing, now); err != nil {
		return err
	}

	claim, err := warranty.NewClaim(
		cmd.ClaimID(), o.ID(), product.ID(), o.CustomerID(),
		o.CreatedAt(), h.policy.ExpirationDate(o.CreatedAt(), product.WarrantyMonths()),
		cmd.Description(),
		cmd.Photos(),
		now,
	)
	if err != nil {
		return err
	}

	if err = claimRepo.Add(ctx, claim); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
