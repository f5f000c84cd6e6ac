package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/carrier"
)

// TrackingProvider looks up a tracking number across the registered carriers.
type TrackingProvider interface {
	TrackingInfo(ctx context.Context, trackingNumber string) (carrier.TrackingInfo, error)
}
