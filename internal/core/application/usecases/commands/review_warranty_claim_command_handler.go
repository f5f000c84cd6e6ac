package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// ReviewWarrantyClaimCommandHandler moves a claim along the review workflow.
type ReviewWarrantyClaimCommandHandler struct {
	uowFactory WarrantyUoWFactory
	clock      kernel.Clock
}

// NewReviewWarrantyClaimCommandHandler creates a ReviewWarrantyClaimCommandHandler.
func NewReviewWarrantyClaimCommandHandler(uowFactory WarrantyUoWFactory, clock kernel.Clock) ReviewWarrantyClaimCommandHandler {
	return ReviewWarrantyClaimCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle fails with errs.ErrInvalidStateTransition for edges outside the review workflow.
func (h ReviewWarrantyClaimCommandHandler) Handle(ctx context.Context, cmd ReviewWarrantyClaimCommand) error {
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

	claimRepo := uow.WarrantyClaimRepository()
	claim, err := claimRepo.Get(ctx, cmd.ClaimID())
	if err != nil {
		return err
	}

	if err = claim.Review(cmd.Status(), cmd.Resolution(), cmd.AdminNotes(), h.clock.Now()); err != nil {
		return err
	}

	if err = claimRepo.Update(ctx, claim); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
