package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warranty"
)

// WarrantyClaimRepository defines the persistence contract for warranty claims.
type WarrantyClaimRepository interface {
	// Add persists a new claim. A duplicate (order, product) pair fails with errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, claim *warranty.Claim) error

	Update(ctx context.Context, claim *warranty.Claim) error

	Get(ctx context.Context, id kernel.UUID) (*warranty.Claim, error)

	// FindByOrderAndProduct fails with errs.ErrObjectNotFound when no claim exists for the pair.
	FindByOrderAndProduct(ctx context.Context, orderID, productID kernel.UUID) (*warranty.Claim, error)
}
