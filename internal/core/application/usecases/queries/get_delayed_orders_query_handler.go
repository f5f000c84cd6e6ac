package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// GetDelayedOrdersQueryHandler narrows the repository's candidates with the delivery
// monitor, so the same rule decides the list and the per-order flag.
//
// Example:
//
//	handler := NewGetDelayedOrdersQueryHandler(orderRepo, services.NewReturnPolicy(), services.NewDeliveryMonitor(), clock)
//	delayed, err := handler.Handle(ctx, NewGetDelayedOrdersQuery())
//	for _, o := range delayed {
//	    fmt.Printf("%s expected %s via %s\n", o.ID, o.EstimatedDeliveryDate, o.CarrierName)
//	}
type GetDelayedOrdersQueryHandler struct {
	orders  ports.OrderRepository
	returns services.ReturnPolicy
	monitor services.DeliveryMonitor
	clock   kernel.Clock
}

// NewGetDelayedOrdersQueryHandler creates a GetDelayedOrdersQueryHandler.
func NewGetDelayedOrdersQueryHandler(
	orders ports.OrderRepository,
	returns services.ReturnPolicy,
	monitor services.DeliveryMonitor,
	clock kernel.Clock,
) GetDelayedOrdersQueryHandler {
	return GetDelayedOrdersQueryHandler{
		orders:  orders,
		returns: returns,
		monitor: monitor,
		clock:   clock,
	}
}

// Handle returns an empty, non-nil slice when nothing is late.
func (h GetDelayedOrdersQueryHandler) Handle(ctx context.Context, query GetDelayedOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	candidates, err := h.orders.ListDelayedCandidates(ctx, now)
	if err != nil {
		return nil, err
	}

	delayed := h.monitor.FilterDelayed(candidates, now)
	views := make([]OrderView, 0, len(delayed))
	for _, o := range delayed {
		views = append(views, NewOrderView(o, h.returns, h.monitor, now))
	}
	return views, nil
}
