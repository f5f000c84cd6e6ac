// Package carrier holds the data shapes exchanged with carrier integrations: carrier
// identifiers, label requests and responses, tracking snapshots and stepped rate tables.
package carrier

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Type identifies a carrier integration.
type Type string

const (
	Postal      Type = "postal"
	Express     Type = "express"
	PickupPoint Type = "pickup_point"
	CourierAPI  Type = "courier_api"
)

var (
	// ErrTrackingNumberNotRecognized is returned by a gateway for tracking numbers it does not
	// issue. Routers treat it as "does not apply" rather than as a failure.
	ErrTrackingNumberNotRecognized = errors.New("tracking number not recognized")

	// ErrPickupPointRequired is returned by carriers that deliver to lockers when the request
	// carries no pickup point.
	ErrPickupPointRequired = errs.NewValueIsRequiredError("pickupPointId")

	// ErrCallTimedOut is the context cause a router sets on the per-call deadline it imposes.
	// A gateway seeing it as the cause treats the expiry as an upstream failure, not as the
	// caller giving up.
	ErrCallTimedOut = errors.New("carrier call timed out")
)

// ParseType normalizes a carrier name. It does not check that an integration exists.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if t == "" {
		return "", errs.NewValueIsRequiredError("carrier")
	}
	return t, nil
}

func (t Type) String() string { return string(t) }

// LabelRequest is everything a carrier needs to issue a label.
type LabelRequest struct {
	Carrier       Type
	From          kernel.Address
	To            kernel.Address
	Dimensions    kernel.Dimensions
	PickupPointID string
	Reference     string
}

// Validate checks the request before it is sent to a carrier.
func (r LabelRequest) Validate() error {
	var refErr error
	if strings.TrimSpace(r.Reference) == "" {
		refErr = errs.NewValueIsRequiredError("reference")
	}
	return errors.Join(r.From.Validate(), r.To.Validate(), r.Dimensions.Validate(), refErr)
}

// LabelResponse is a carrier-issued label. Simulated is set when the response was produced
// locally instead of by the carrier's system.
type LabelResponse struct {
	TrackingNumber        string
	LabelURL              string
	Cost                  decimal.Decimal
	EstimatedDeliveryDate time.Time
	Simulated             bool
}

// Validate rejects partial responses: a tracking number without a label URL or the reverse.
func (r LabelResponse) Validate() error {
	var trackingErr, labelErr error
	if strings.TrimSpace(r.TrackingNumber) == "" {
		trackingErr = errs.NewValueIsRequiredError("trackingNumber")
	}
	if strings.TrimSpace(r.LabelURL) == "" {
		labelErr = errs.NewValueIsRequiredError("labelUrl")
	}
	return errors.Join(trackingErr, labelErr)
}

// TrackingInfo is a carrier's view of a shipment.
type TrackingInfo struct {
	TrackingNumber        string
	CarrierName           string
	ShippedAt             *time.Time
	EstimatedDeliveryDate *time.Time
	DeliveredAt           *time.Time
	IsDelayed             bool
}

// IsDelivered reports whether the carrier confirmed delivery.
func (i TrackingInfo) IsDelivered() bool {
	return i.DeliveredAt != nil
}

// ComputeDelay fills IsDelayed: the estimate has passed and nothing was delivered.
func (i TrackingInfo) ComputeDelay(now time.Time) TrackingInfo {
	i.IsDelayed = i.DeliveredAt == nil && i.EstimatedDeliveryDate != nil && now.After(*i.EstimatedDeliveryDate)
	return i
}
