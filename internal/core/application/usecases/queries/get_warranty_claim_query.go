package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetWarrantyClaimQueryIsNotConstructed = errors.New(
	"GetWarrantyClaimQuery must be created via NewGetWarrantyClaimQuery constructor",
)

// GetWarrantyClaimQuery reads a claim on behalf of its owner or an admin.
type GetWarrantyClaimQuery struct {
	actor   kernel.Actor
	claimID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetWarrantyClaimQuery(actor kernel.Actor, claimID kernel.UUID) (GetWarrantyClaimQuery, error) {
	if err := errors.Join(requireActor(actor), claimID.Validate()); err != nil {
		return GetWarrantyClaimQuery{}, err
	}
	return GetWarrantyClaimQuery{
		actor:   actor,
		claimID: claimID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWarrantyClaimQuery) Validate() error {
	return q.guard.Validate(ErrGetWarrantyClaimQueryIsNotConstructed)
}

func (q GetWarrantyClaimQuery) Actor() kernel.Actor  { return q.actor }
func (q GetWarrantyClaimQuery) ClaimID() kernel.UUID { return q.claimID }
