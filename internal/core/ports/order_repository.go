// Package ports defines the contracts between the fulfillment core and its adapters:
// persistence, carrier integrations, label rendering and shipment notifications.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. It fails with errs.ErrVersionIsInvalid
	// when the stored version differs from the one the aggregate was read with.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id or fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListDelayedCandidates returns orders whose estimated delivery date is before now
	// and that are neither Delivered nor Cancelled. The delivery monitor makes the final call.
	ListDelayedCandidates(ctx context.Context, now time.Time) ([]*order.Order, error)
}
