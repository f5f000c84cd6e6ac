package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// GetTrackingInfoQueryHandler resolves the order's tracking number through the carrier
// router. Only the tracking number is known at this point, so every carrier is probed.
type GetTrackingInfoQueryHandler struct {
	orders   ports.OrderRepository
	tracking TrackingProvider
}

func NewGetTrackingInfoQueryHandler(orders ports.OrderRepository, tracking TrackingProvider) GetTrackingInfoQueryHandler {
	return GetTrackingInfoQueryHandler{orders: orders, tracking: tracking}
}

// Handle fails with shipment.ErrMissingTrackingNumber before a label exists.
func (h GetTrackingInfoQueryHandler) Handle(ctx context.Context, query GetTrackingInfoQuery) (carrier.TrackingInfo, error) {
	if err := query.Validate(); err != nil {
		return carrier.TrackingInfo{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return carrier.TrackingInfo{}, err
	}
	if !query.Actor().CanAccess(o.CustomerID()) {
		return carrier.TrackingInfo{}, errs.NewForbiddenError(query.Actor().ID.String(), "order", o.ID())
	}
	if o.TrackingNumber() == "" {
		return carrier.TrackingInfo{}, shipment.ErrMissingTrackingNumber
	}

	return h.tracking.TrackingInfo(ctx, o.TrackingNumber())
}
