package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
)

// ShipmentEventHandler is the only writer of shipment facts on orders. It applies the
// events pulled from a package to the owning order and persists each touched order once.
//
// Example:
//
//	if err := pkg.MarkShipped(now); err != nil {
//	    return err
//	}
//	orders, err := NewShipmentEventHandler().Apply(ctx, uow.OrderRepository(), pkg.PullEvents())
type ShipmentEventHandler struct{}

// NewShipmentEventHandler creates a ShipmentEventHandler.
func NewShipmentEventHandler() ShipmentEventHandler {
	return ShipmentEventHandler{}
}

// Apply loads the orders the events refer to, applies the events in sequence and updates
// every order it changed. It returns the updated orders keyed by id.
func (h ShipmentEventHandler) Apply(
	ctx context.Context,
	orders ports.OrderRepository,
	events []shipment.Event,
) (map[kernel.UUID]*order.Order, error) {
	touched := make(map[kernel.UUID]*order.Order)
	sequence := make([]kernel.UUID, 0, 1)

	for _, event := range events {
		o, ok := touched[event.OrderID()]
		if !ok {
			loaded, err := orders.Get(ctx, event.OrderID())
			if err != nil {
				return nil, err
			}
			o = loaded
			touched[event.OrderID()] = o
			sequence = append(sequence, event.OrderID())
		}

		if err := h.apply(o, event); err != nil {
			return nil, fmt.Errorf("%s: %w", event.EventName(), err)
		}
	}

	for _, id := range sequence {
		if err := orders.Update(ctx, touched[id]); err != nil {
			return nil, err
		}
	}
	return touched, nil
}

func (ShipmentEventHandler) apply(o *order.Order, event shipment.Event) error {
	switch e := event.(type) {
	case shipment.PackageReadyToShip:
		estimate := e.EstimatedDeliveryDate
		return o.ApplyLabelGenerated(e.TrackingNumber, e.Carrier.String(), &estimate)
	case shipment.LabelCancelled:
		return o.ApplyLabelCancelled()
	case shipment.PackageShipped:
		return o.ApplyShipped(e.TrackingNumber, e.ShippedAt)
	case shipment.PackageDelivered:
		return o.ApplyDelivered(e.DeliveredAt)
	default:
		return fmt.Errorf("unhandled shipment event %T", event)
	}
}
