// Package notify delivers customer notifications about shipments.
package notify

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"

	"go.uber.org/zap"
)

var _ ports.ShipmentNotifier = (*LogNotifier)(nil)

// LogNotifier writes the shipment notification to the log. It stands in for the mail
// provider in environments without one.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger.With(zap.String("component", "notifier"))}
}

func (n *LogNotifier) NotifyShipped(ctx context.Context, o *order.Order, pkg *shipment.Package) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fields := []zap.Field{
		zap.String("order_id", o.ID().String()),
		zap.String("customer_id", o.CustomerID().String()),
		zap.String("package_id", pkg.ID().String()),
		zap.String("carrier", pkg.Carrier().String()),
		zap.String("tracking_number", pkg.TrackingNumber()),
		zap.String("recipient", o.ShippingAddress().FullName()),
	}
	if eta := o.EstimatedDeliveryDate(); eta != nil {
		fields = append(fields, zap.Time("estimated_delivery", *eta))
	}

	n.logger.Info("shipment notification sent", fields...)
	return nil
}
