// Package orderrepo persists order aggregates with GORM: one row per order in "orders"
// and its line items in "order_items".
package orderrepo

import (
	"errors"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgtypes"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the "orders" row. Statuses are stored as their enum values.
type OrderDTO struct {
	ID                    uuid.UUID          `gorm:"type:uuid;primaryKey"`
	CustomerID            uuid.UUID          `gorm:"type:uuid;index;not null"`
	Status                int                `gorm:"type:smallint;index;not null"`
	PaymentStatus         int                `gorm:"type:smallint;not null"`
	TotalAmount           decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	ShippingAddress       pgtypes.AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	CreatedAt             time.Time          `gorm:"not null"`
	DeliveredAt           *time.Time
	ReturnRequestedAt     *time.Time
	ReturnReason          string
	ReturnStatus          int `gorm:"type:smallint;not null"`
	ShippedAt             *time.Time
	EstimatedDeliveryDate *time.Time `gorm:"index"`
	TrackingNumber        string     `gorm:"size:64;index"`
	CarrierName           string     `gorm:"size:32"`
	EstimatedDeliveryDays int        `gorm:"not null"`
	Version               int        `gorm:"not null"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is an "order_items" row. Position keeps the checkout order of the lines.
type OrderItemDTO struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	Position  int             `gorm:"not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"size:200;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:   o.ID().Bytes(),
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:                    o.ID().Bytes(),
		CustomerID:            o.CustomerID().Bytes(),
		Status:                int(o.Status()),
		PaymentStatus:         int(o.PaymentStatus()),
		TotalAmount:           o.TotalAmount(),
		ShippingAddress:       pgtypes.FromAddress(o.ShippingAddress()),
		CreatedAt:             o.CreatedAt(),
		DeliveredAt:           o.DeliveredAt(),
		ReturnRequestedAt:     o.ReturnRequestedAt(),
		ReturnReason:          o.ReturnReason(),
		ReturnStatus:          int(o.ReturnStatus()),
		ShippedAt:             o.ShippedAt(),
		EstimatedDeliveryDate: o.EstimatedDeliveryDate(),
		TrackingNumber:        o.TrackingNumber(),
		CarrierName:           o.CarrierName(),
		EstimatedDeliveryDays: o.EstimatedDeliveryDays(),
		Version:               o.Version(),
		Items:                 itemDTOs,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := pgtypes.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := pgtypes.ToUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	address, err := dto.ShippingAddress.ToAddress()
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	var itemErrs []error
	for _, row := range dto.Items {
		item, itemErr := toLineItem(row)
		if itemErr != nil {
			itemErrs = append(itemErrs, itemErr)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(itemErrs...); err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:                    id,
		CustomerID:            customerID,
		Items:                 items,
		Status:                order.Status(dto.Status),
		PaymentStatus:         order.PaymentStatus(dto.PaymentStatus),
		ShippingAddress:       address,
		CreatedAt:             dto.CreatedAt,
		DeliveredAt:           dto.DeliveredAt,
		ReturnRequestedAt:     dto.ReturnRequestedAt,
		ReturnReason:          dto.ReturnReason,
		ReturnStatus:          order.ReturnStatus(dto.ReturnStatus),
		ShippedAt:             dto.ShippedAt,
		EstimatedDeliveryDate: dto.EstimatedDeliveryDate,
		TrackingNumber:        dto.TrackingNumber,
		CarrierName:           dto.CarrierName,
		EstimatedDeliveryDays: dto.EstimatedDeliveryDays,
		Version:               dto.Version,
	})
}

func toLineItem(row OrderItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(row.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	return order.NewLineItem(productID, row.Name, row.Quantity, row.UnitPrice)
}
