package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/carrier"
)

// CarrierGateway is one carrier integration.
//
// GetTrackingInfo and CancelShipment must fail with carrier.ErrTrackingNumberNotRecognized
// for tracking numbers the carrier did not issue, so that routers can tell "not mine"
// apart from a failed call.
type CarrierGateway interface {
	// Name is used in logs and errors.
	Name() string

	Supports(carrierType carrier.Type) bool

	GenerateLabel(ctx context.Context, req carrier.LabelRequest) (carrier.LabelResponse, error)

	GetTrackingInfo(ctx context.Context, trackingNumber string) (carrier.TrackingInfo, error)

	// CancelShipment returns false when the carrier refused, e.g. because the parcel
	// is already in transit.
	CancelShipment(ctx context.Context, trackingNumber string) (bool, error)
}
