package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// GetOrderQueryHandler returns an OrderView with canReturn, returnDeadline and
// isDeliveryDelayed evaluated at the clock's current time.
type GetOrderQueryHandler struct {
	orders  ports.OrderRepository
	returns services.ReturnPolicy
	monitor services.DeliveryMonitor
	clock   kernel.Clock
}

// NewGetOrderQueryHandler creates a GetOrderQueryHandler.
func NewGetOrderQueryHandler(
	orders ports.OrderRepository,
	returns services.ReturnPolicy,
	monitor services.DeliveryMonitor,
	clock kernel.Clock,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders:  orders,
		returns: returns,
		monitor: monitor,
		clock:   clock,
	}
}

// Handle fails with errs.ErrObjectNotFound for an unknown order and errs.ErrForbidden when
// the actor neither owns it nor is an admin.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	if !query.Actor().CanAccess(o.CustomerID()) {
		return OrderView{}, errs.NewForbiddenError(query.Actor().ID.String(), "order", o.ID())
	}

	return NewOrderView(o, h.returns, h.monitor, h.clock.Now()), nil
}
