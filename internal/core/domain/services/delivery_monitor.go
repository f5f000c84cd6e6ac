package services

import (
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// DeliveryMonitor derives delivery delays from the order's estimate.
type DeliveryMonitor struct{}

// NewDeliveryMonitor creates a DeliveryMonitor.
func NewDeliveryMonitor() DeliveryMonitor {
	return DeliveryMonitor{}
}

// IsDelayed reports whether the estimate has passed while the order is neither
// Delivered nor Cancelled.
func (DeliveryMonitor) IsDelayed(o *order.Order, now time.Time) bool {
	estimate := o.EstimatedDeliveryDate()
	if estimate == nil {
		return false
	}
	if s := o.Status(); s == order.Delivered || s == order.Cancelled {
		return false
	}
	return now.After(*estimate)
}

// FilterDelayed keeps the delayed orders, preserving input order.
func (m DeliveryMonitor) FilterDelayed(orders []*order.Order, now time.Time) []*order.Order {
	delayed := make([]*order.Order, 0)
	for _, o := range orders {
		if m.IsDelayed(o, now) {
			delayed = append(delayed, o)
		}
	}
	return delayed
}
