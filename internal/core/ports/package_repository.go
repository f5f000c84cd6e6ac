package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// PackageRepository defines the persistence contract for package aggregates.
type PackageRepository interface {
	// Add persists a new package. A second package for the same order fails with
	// errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *shipment.Package) error

	// Update persists changes with the same version discipline as OrderRepository.Update.
	Update(ctx context.Context, aggregate *shipment.Package) error

	// Get retrieves a package by id or fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Package, error)

	// GetByOrder retrieves the package of an order or fails with errs.ErrObjectNotFound.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*shipment.Package, error)

	// ListByStatus returns every package in status, oldest first.
	ListByStatus(ctx context.Context, status shipment.Status) ([]*shipment.Package, error)
}
