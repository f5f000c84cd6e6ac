// Package queries contains the read side: views of orders, packages and warranty claims.
// Derived flags such as canReturn, isDeliveryDelayed and isUnderWarranty are evaluated by
// the domain policies at read time and are never stored.
package queries

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warranty"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// OrderItemView is one line item of an order.
type OrderItemView struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// OrderView is an order with its return and delivery flags evaluated at a given instant.
type OrderView struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	Status                string
	PaymentStatus         string
	Items                 []OrderItemView
	TotalAmount           decimal.Decimal
	ShippingAddress       kernel.Address
	CreatedAt             time.Time
	ShippedAt             *time.Time
	DeliveredAt           *time.Time
	EstimatedDeliveryDate *time.Time
	TrackingNumber        string
	CarrierName           string
	ReturnStatus          string
	ReturnReason          string
	ReturnRequestedAt     *time.Time

	CanReturn bool
	// ReturnIneligibility is the reason code when CanReturn is false.
	ReturnIneligibility string
	ReturnDeadline      *time.Time
	IsDeliveryDelayed   bool
}

// NewOrderView evaluates the return policy and the delivery monitor for o at now.
func NewOrderView(o *order.Order, returns services.ReturnPolicy, monitor services.DeliveryMonitor, now time.Time) OrderView {
	items := make([]OrderItemView, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemView{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		})
	}

	view := OrderView{
		ID:                    o.ID(),
		CustomerID:            o.CustomerID(),
		Status:                o.Status().String(),
		PaymentStatus:         o.PaymentStatus().String(),
		Items:                 items,
		TotalAmount:           o.TotalAmount(),
		ShippingAddress:       o.ShippingAddress(),
		CreatedAt:             o.CreatedAt(),
		ShippedAt:             o.ShippedAt(),
		DeliveredAt:           o.DeliveredAt(),
		EstimatedDeliveryDate: o.EstimatedDeliveryDate(),
		TrackingNumber:        o.TrackingNumber(),
		CarrierName:           o.CarrierName(),
		ReturnStatus:          o.ReturnStatus().String(),
		ReturnReason:          o.ReturnReason(),
		ReturnRequestedAt:     o.ReturnRequestedAt(),
		IsDeliveryDelayed:     monitor.IsDelayed(o, now),
	}

	if deadline, ok := returns.ReturnDeadline(o); ok {
		view.ReturnDeadline = &deadline
	}
	reason, ineligible := returns.ExplainIneligibility(o, now)
	view.CanReturn = !ineligible
	view.ReturnIneligibility = reason

	return view
}

// PackageView is the admin view of a package.
type PackageView struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	Status           string
	Carrier          string
	WeightKg         float64
	LengthCm         float64
	WidthCm          float64
	HeightCm         float64
	TrackingNumber   string
	LabelURL         string
	LabelCost        decimal.Decimal
	LabelSimulated   bool
	PickupPointID    string
	PreparedAt       *time.Time
	ShippedAt        *time.Time
	DeliveredAt      *time.Time
	NotificationSent bool
	Notes            string
}

// NewPackageView copies the state of p.
func NewPackageView(p *shipment.Package) PackageView {
	dims := p.Dimensions()
	return PackageView{
		ID:               p.ID(),
		OrderID:          p.OrderID(),
		Status:           p.Status().String(),
		Carrier:          p.Carrier().String(),
		WeightKg:         dims.WeightKg(),
		LengthCm:         dims.LengthCm(),
		WidthCm:          dims.WidthCm(),
		HeightCm:         dims.HeightCm(),
		TrackingNumber:   p.TrackingNumber(),
		LabelURL:         p.LabelURL(),
		LabelCost:        p.LabelCost(),
		LabelSimulated:   p.LabelSimulated(),
		PickupPointID:    p.PickupPointID(),
		PreparedAt:       p.PreparedAt(),
		ShippedAt:        p.ShippedAt(),
		DeliveredAt:      p.DeliveredAt(),
		NotificationSent: p.NotificationSent(),
		Notes:            p.Notes(),
	}
}

// ClaimView is a warranty claim with its warranty window evaluated at a given instant.
type ClaimView struct {
	ID                     kernel.UUID
	OrderID                kernel.UUID
	ProductID              kernel.UUID
	CustomerID             kernel.UUID
	PurchaseDate           time.Time
	WarrantyExpirationDate time.Time
	IssueDescription       string
	Photos                 []string
	Status                 string
	Resolution             string
	AdminNotes             string
	ResolvedAt             *time.Time
	CreatedAt              time.Time

	IsUnderWarranty bool
}

// NewClaimView recomputes IsUnderWarranty for now.
func NewClaimView(c *warranty.Claim, policy services.WarrantyPolicy, now time.Time) ClaimView {
	return ClaimView{
		ID:                     c.ID(),
		OrderID:                c.OrderID(),
		ProductID:              c.ProductID(),
		CustomerID:             c.CustomerID(),
		PurchaseDate:           c.PurchaseDate(),
		WarrantyExpirationDate: c.WarrantyExpirationDate(),
		IssueDescription:       c.IssueDescription(),
		Photos:                 c.Photos(),
		Status:                 c.Status().String(),
		Resolution:             c.Resolution(),
		AdminNotes:             c.AdminNotes(),
		ResolvedAt:             c.ResolvedAt(),
		CreatedAt:              c.CreatedAt(),
		IsUnderWarranty:        policy.IsUnderWarranty(c, now),
	}
}
