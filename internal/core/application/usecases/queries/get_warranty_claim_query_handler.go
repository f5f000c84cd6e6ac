package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// GetWarrantyClaimQueryHandler returns a ClaimView whose isUnderWarranty is recomputed on
// every read.
type GetWarrantyClaimQueryHandler struct {
	claims ports.WarrantyClaimRepository
	policy services.WarrantyPolicy
	clock  kernel.Clock
}

func NewGetWarrantyClaimQueryHandler(
	claims ports.WarrantyClaimRepository,
	policy services.WarrantyPolicy,
	clock kernel.Clock,
) GetWarrantyClaimQueryHandler {
	return GetWarrantyClaimQueryHandler{
		claims: claims,
		policy: policy,
		clock:  clock,
	}
}

func (h GetWarrantyClaimQueryHandler) Handle(ctx context.Context, query GetWarrantyClaimQuery) (ClaimView, error) {
	if err := query.Validate(); err != nil {
		return ClaimView{}, err
	}

	c, err := h.claims.Get(ctx, query.ClaimID())
	if err != nil {
		return ClaimView{}, err
	}
	if !query.Actor().CanAccess(c.CustomerID()) {
		return ClaimView{}, errs.NewForbiddenError(query.Actor().ID.String(), "warrantyClaim", c.ID())
	}

	return NewClaimView(c, h.policy, h.clock.Now()), nil
}
