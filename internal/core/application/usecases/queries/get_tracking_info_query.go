package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetTrackingInfoQueryIsNotConstructed = errors.New(
	"GetTrackingInfoQuery must be created via NewGetTrackingInfoQuery constructor",
)

// GetTrackingInfoQuery asks the carriers about the shipment of an order.
type GetTrackingInfoQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTrackingInfoQuery(actor kernel.Actor, orderID kernel.UUID) (GetTrackingInfoQuery, error) {
	if err := errors.Join(requireActor(actor), orderID.Validate()); err != nil {
		return GetTrackingInfoQuery{}, err
	}
	return GetTrackingInfoQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingInfoQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingInfoQueryIsNotConstructed)
}

func (q GetTrackingInfoQuery) Actor() kernel.Actor  { return q.actor }
func (q GetTrackingInfoQuery) OrderID() kernel.UUID { return q.orderID }
