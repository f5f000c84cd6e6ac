package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListPackagesQueryIsNotConstructed = errors.New(
	"ListPackagesQuery must be created via NewListPackagesQuery constructor",
)

// ListPackagesQuery lists packages for the warehouse dashboard, optionally narrowed to
// one status. Admin only.
//
// Example:
//
//	query, _ := NewListPackagesQuery(shipment.ReadyToShip)
//	packages, err := handler.Handle(ctx, query)
//	for _, p := range packages {
//	    fmt.Printf("%s %s %s\n", p.ID, p.Carrier, p.TrackingNumber)
//	}
type ListPackagesQuery struct {
	status shipment.Status

	guard guard.ConstructorGuard
}

// NewListPackagesQuery filters by status; shipment.Unknown lists every package.
func NewListPackagesQuery(status shipment.Status) (ListPackagesQuery, error) {
	if status != shipment.Unknown {
		if err := status.Validate(); err != nil {
			return ListPackagesQuery{}, err
		}
	}
	return ListPackagesQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesQueryIsNotConstructed)
}

func (q ListPackagesQuery) Status() shipment.Status { return q.status }

// PackageSummary is one row of the package list.
type PackageSummary struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	Status         shipment.Status
	Carrier        string
	TrackingNumber string
	LabelCost      decimal.Decimal
	CreatedAt      time.Time
	ShippedAt      *time.Time
}
