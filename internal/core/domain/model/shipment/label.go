package shipment

import (
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
)

// Label is the printable content of a shipping label.
type Label struct {
	TrackingNumber string
	Carrier        carrier.Type
	LabelURL       string
	From           kernel.Address
	To             kernel.Address
	Dimensions     kernel.Dimensions
	PickupPointID  string
	Reference      string
}
