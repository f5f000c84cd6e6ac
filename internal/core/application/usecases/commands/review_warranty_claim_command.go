package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warranty"
	"fulfillment/internal/pkg/guard"
)

var ErrReviewWarrantyClaimCommandIsNotConstructed = errors.New(
	"ReviewWarrantyClaimCommand must be created via NewReviewWarrantyClaimCommand constructor",
)

// ReviewWarrantyClaimCommand is an admin decision on a claim.
type ReviewWarrantyClaimCommand struct {
	claimID    kernel.UUID
	status     warranty.Status
	resolution string
	adminNotes string

	guard guard.ConstructorGuard
}

// NewReviewWarrantyClaimCommand creates a ReviewWarrantyClaimCommand.
func NewReviewWarrantyClaimCommand(
	claimID kernel.UUID,
	status warranty.Status,
	resolution, adminNotes string,
) (ReviewWarrantyClaimCommand, error) {
	if err := errors.Join(claimID.Validate(), status.Validate()); err != nil {
		return ReviewWarrantyClaimCommand{}, err
	}

	return ReviewWarrantyClaimCommand{
		claimID:    claimID,
		status:     status,
		resolution: resolution,
		adminNotes: adminNotes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewWarrantyClaimCommand) Validate() error {
	return c.guard.Validate(ErrReviewWarrantyClaimCommandIsNotConstructed)
}

func (c ReviewWarrantyClaimCommand) ClaimID() kernel.UUID    { return c.claimID }
func (c ReviewWarrantyClaimCommand) Status() warranty.Status { return c.status }
func (c ReviewWarrantyClaimCommand) Resolution() string      { return c.resolution }
func (c ReviewWarrantyClaimCommand) AdminNotes() string      { return c.adminNotes }
