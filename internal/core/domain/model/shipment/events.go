package shipment

import (
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
)

// Event is a fact recorded by a Package that the owning order reacts to.
type Event interface {
	EventName() string
	OrderID() kernel.UUID
}

// PackageReadyToShip is recorded when a carrier issued a label.
type PackageReadyToShip struct {
	PackageID             kernel.UUID
	Order                 kernel.UUID
	TrackingNumber        string
	Carrier               carrier.Type
	EstimatedDeliveryDate time.Time
	OccurredAt            time.Time
}

func (e PackageReadyToShip) EventName() string    { return "package.ready_to_ship" }
func (e PackageReadyToShip) OrderID() kernel.UUID { return e.Order }

// PackageShipped is recorded when the carrier took the package.
type PackageShipped struct {
	PackageID      kernel.UUID
	Order          kernel.UUID
	TrackingNumber string
	Carrier        carrier.Type
	ShippedAt      time.Time
}

func (e PackageShipped) EventName() string    { return "package.shipped" }
func (e PackageShipped) OrderID() kernel.UUID { return e.Order }

// PackageDelivered is recorded when delivery was confirmed.
type PackageDelivered struct {
	PackageID   kernel.UUID
	Order       kernel.UUID
	DeliveredAt time.Time
}

func (e PackageDelivered) EventName() string    { return "package.delivered" }
func (e PackageDelivered) OrderID() kernel.UUID { return e.Order }

// LabelCancelled is recorded when the carrier cancelled an issued label.
type LabelCancelled struct {
	PackageID      kernel.UUID
	Order          kernel.UUID
	TrackingNumber string
	OccurredAt     time.Time
}

func (e LabelCancelled) EventName() string    { return "package.label_cancelled" }
func (e LabelCancelled) OrderID() kernel.UUID { return e.Order }
