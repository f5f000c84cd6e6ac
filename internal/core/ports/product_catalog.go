package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
)

// ProductCatalog is the read-only view of the product catalog.
type ProductCatalog interface {
	Get(ctx context.Context, id kernel.UUID) (catalog.Product, error)
}
