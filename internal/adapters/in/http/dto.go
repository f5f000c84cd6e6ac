package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type Address struct {
	FullName   string `json:"fullName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

func (a Address) toDomain() (kernel.Address, error) {
	return kernel.NewAddress(a.FullName, a.Street, a.City, a.PostalCode, a.Country, a.Phone)
}

func fromAddress(a kernel.Address) Address {
	return Address{
		FullName:   a.FullName(),
		Street:     a.Street(),
		City:       a.City(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
		Phone:      a.Phone(),
	}
}

type NewOrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// NewOrder is the checkout hand-off. CustomerID is taken from the caller unless an admin
// creates the order on a customer's behalf.
type NewOrder struct {
	CustomerID      string         `json:"customerId,omitempty"`
	Items           []NewOrderItem `json:"items"`
	ShippingAddress Address        `json:"shippingAddress"`
	PaymentStatus   string         `json:"paymentStatus"`
}

type Created struct {
	ID string `json:"id"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type ReturnStatusChange struct {
	ReturnStatus string `json:"returnStatus"`
}

type ReturnRequest struct {
	Reason string `json:"reason"`
}

type NewPackage struct {
	OrderID       string  `json:"orderId"`
	Carrier       string  `json:"carrier"`
	WeightKg      float64 `json:"weightKg"`
	LengthCm      float64 `json:"lengthCm"`
	WidthCm       float64 `json:"widthCm"`
	HeightCm      float64 `json:"heightCm"`
	PickupPointID string  `json:"pickupPointId,omitempty"`
}

type Delivery struct {
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

type Note struct {
	Note string `json:"note"`
}

type NewWarrantyClaim struct {
	OrderID          string   `json:"orderId"`
	ProductID        string   `json:"productId"`
	IssueDescription string   `json:"issueDescription"`
	Photos           []string `json:"photos,omitempty"`
}

type ClaimReview struct {
	Status     string `json:"status"`
	Resolution string `json:"resolution,omitempty"`
	AdminNotes string `json:"adminNotes,omitempty"`
}

type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type Order struct {
	ID                    string          `json:"id"`
	CustomerID            string          `json:"customerId"`
	Status                string          `json:"status"`
	PaymentStatus         string          `json:"paymentStatus"`
	Items                 []OrderItem     `json:"items"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
	ShippingAddress       Address         `json:"shippingAddress"`
	CreatedAt             time.Time       `json:"createdAt"`
	ShippedAt             *time.Time      `json:"shippedAt,omitempty"`
	DeliveredAt           *time.Time      `json:"deliveredAt,omitempty"`
	EstimatedDeliveryDate *time.Time      `json:"estimatedDeliveryDate,omitempty"`
	TrackingNumber        string          `json:"trackingNumber,omitempty"`
	CarrierName           string          `json:"carrierName,omitempty"`
	ReturnStatus          string          `json:"returnStatus"`
	ReturnReason          string          `json:"returnReason,omitempty"`
	ReturnRequestedAt     *time.Time      `json:"returnRequestedAt,omitempty"`
	CanReturn             bool            `json:"canReturn"`
	ReturnIneligibility   string          `json:"returnIneligibility,omitempty"`
	ReturnDeadline        *time.Time      `json:"returnDeadline,omitempty"`
	IsDeliveryDelayed     bool            `json:"isDeliveryDelayed"`
}

func fromOrderView(v queries.OrderView) Order {
	items := make([]OrderItem, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}
	return Order{
		ID:                    v.ID.String(),
		CustomerID:            v.CustomerID.String(),
		Status:                v.Status,
		PaymentStatus:         v.PaymentStatus,
		Items:                 items,
		TotalAmount:           v.TotalAmount,
		ShippingAddress:       fromAddress(v.ShippingAddress),
		CreatedAt:             v.CreatedAt,
		ShippedAt:             v.ShippedAt,
		DeliveredAt:           v.DeliveredAt,
		EstimatedDeliveryDate: v.EstimatedDeliveryDate,
		TrackingNumber:        v.TrackingNumber,
		CarrierName:           v.CarrierName,
		ReturnStatus:          v.ReturnStatus,
		ReturnReason:          v.ReturnReason,
		ReturnRequestedAt:     v.ReturnRequestedAt,
		CanReturn:             v.CanReturn,
		ReturnIneligibility:   v.ReturnIneligibility,
		ReturnDeadline:        v.ReturnDeadline,
		IsDeliveryDelayed:     v.IsDeliveryDelayed,
	}
}

type Package struct {
	ID               string          `json:"id"`
	OrderID          string          `json:"orderId"`
	Status           string          `json:"status"`
	Carrier          string          `json:"carrier"`
	WeightKg         float64         `json:"weightKg"`
	LengthCm         float64         `json:"lengthCm"`
	WidthCm          float64         `json:"widthCm"`
	HeightCm         float64         `json:"heightCm"`
	TrackingNumber   string          `json:"trackingNumber,omitempty"`
	LabelURL         string          `json:"labelUrl,omitempty"`
	LabelCost        decimal.Decimal `json:"labelCost"`
	LabelSimulated   bool            `json:"labelSimulated"`
	PickupPointID    string          `json:"pickupPointId,omitempty"`
	PreparedAt       *time.Time      `json:"preparedAt,omitempty"`
	ShippedAt        *time.Time      `json:"shippedAt,omitempty"`
	DeliveredAt      *time.Time      `json:"deliveredAt,omitempty"`
	NotificationSent bool            `json:"notificationSent"`
	Notes            string          `json:"notes,omitempty"`
}

func fromPackageView(v queries.PackageView) Package {
	return Package{
		ID:               v.ID.String(),
		OrderID:          v.OrderID.String(),
		Status:           v.Status,
		Carrier:          v.Carrier,
		WeightKg:         v.WeightKg,
		LengthCm:         v.LengthCm,
		WidthCm:          v.WidthCm,
		HeightCm:         v.HeightCm,
		TrackingNumber:   v.TrackingNumber,
		LabelURL:         v.LabelURL,
		LabelCost:        v.LabelCost,
		LabelSimulated:   v.LabelSimulated,
		PickupPointID:    v.PickupPointID,
		PreparedAt:       v.PreparedAt,
		ShippedAt:        v.ShippedAt,
		DeliveredAt:      v.DeliveredAt,
		NotificationSent: v.NotificationSent,
		Notes:            v.Notes,
	}
}

type PackageSummary struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"orderId"`
	Status         string          `json:"status"`
	Carrier        string          `json:"carrier"`
	TrackingNumber string          `json:"trackingNumber,omitempty"`
	LabelCost      decimal.Decimal `json:"labelCost"`
	CreatedAt      time.Time       `json:"createdAt"`
	ShippedAt      *time.Time      `json:"shippedAt,omitempty"`
}

func fromPackageSummary(s queries.PackageSummary) PackageSummary {
	return PackageSummary{
		ID:             s.ID.String(),
		OrderID:        s.OrderID.String(),
		Status:         s.Status.String(),
		Carrier:        s.Carrier,
		TrackingNumber: s.TrackingNumber,
		LabelCost:      s.LabelCost,
		CreatedAt:      s.CreatedAt,
		ShippedAt:      s.ShippedAt,
	}
}

type TrackingInfo struct {
	TrackingNumber        string     `json:"trackingNumber"`
	CarrierName           string     `json:"carrierName"`
	ShippedAt             *time.Time `json:"shippedAt,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate,omitempty"`
	DeliveredAt           *time.Time `json:"deliveredAt,omitempty"`
	IsDelayed             bool       `json:"isDelayed"`
}

func fromTrackingInfo(i carrier.TrackingInfo) TrackingInfo {
	return TrackingInfo{
		TrackingNumber:        i.TrackingNumber,
		CarrierName:           i.CarrierName,
		ShippedAt:             i.ShippedAt,
		EstimatedDeliveryDate: i.EstimatedDeliveryDate,
		DeliveredAt:           i.DeliveredAt,
		IsDelayed:             i.IsDelayed,
	}
}

type WarrantyClaim struct {
	ID                     string     `json:"id"`
	OrderID                string     `json:"orderId"`
	ProductID              string     `json:"productId"`
	CustomerID             string     `json:"customerId"`
	PurchaseDate           time.Time  `json:"purchaseDate"`
	WarrantyExpirationDate time.Time  `json:"warrantyExpirationDate"`
	IssueDescription       string     `json:"issueDescription"`
	Photos                 []string   `json:"photos"`
	Status                 string     `json:"status"`
	Resolution             string     `json:"resolution,omitempty"`
	AdminNotes             string     `json:"adminNotes,omitempty"`
	ResolvedAt             *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
	IsUnderWarranty        bool       `json:"isUnderWarranty"`
}

func fromClaimView(v queries.ClaimView) WarrantyClaim {
	return WarrantyClaim{
		ID:                     v.ID.String(),
		OrderID:                v.OrderID.String(),
		ProductID:              v.ProductID.String(),
		CustomerID:             v.CustomerID.String(),
		PurchaseDate:           v.PurchaseDate,
		WarrantyExpirationDate: v.WarrantyExpirationDate,
		IssueDescription:       v.IssueDescription,
		Photos:                 v.Photos,
		Status:                 v.Status,
		Resolution:             v.Resolution,
		AdminNotes:             v.AdminNotes,
		ResolvedAt:             v.ResolvedAt,
		CreatedAt:              v.CreatedAt,
		IsUnderWarranty:        v.IsUnderWarranty,
	}
}

type SyncResult struct {
	Checked   int `json:"checked"`
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}

func fromSyncResult(r commands.SyncTrackingResult) SyncResult {
	return SyncResult{Checked: r.Checked, Delivered: r.Delivered, Failed: r.Failed}
}
