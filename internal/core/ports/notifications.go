package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
)

// NotificationGate guards the shipment notification so that it is sent at most once per package.
type NotificationGate interface {
	HasSent(ctx context.Context, pkg *shipment.Package) (bool, error)

	// MarkSent records the notification. It returns false when another caller had
	// already marked the package, in which case the caller must not dispatch.
	MarkSent(ctx context.Context, pkg *shipment.Package, at time.Time) (bool, error)
}

// ShipmentNotifier tells the customer that their order shipped.
type ShipmentNotifier interface {
	NotifyShipped(ctx context.Context, o *order.Order, pkg *shipment.Package) error
}
