// Package packagerepo persists package aggregates with GORM in the "packages" table.
package packagerepo

import (
	"time"

	"fulfillment/internal/adapters/out/postgres/pgtypes"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PackageDTO is the "packages" row. order_id is unique: one package per order.
type PackageDTO struct {
	ID                 uuid.UUID             `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID             `gorm:"type:uuid;uniqueIndex;not null"`
	Dimensions         pgtypes.DimensionsDTO `gorm:"embedded;embeddedPrefix:parcel_"`
	Status             int                   `gorm:"type:smallint;index;not null"`
	Carrier            string                `gorm:"size:32;not null"`
	TrackingNumber     string                `gorm:"size:64;index"`
	LabelURL           string                `gorm:"size:500"`
	LabelCost          decimal.Decimal       `gorm:"type:numeric(10,2);not null"`
	LabelSimulated     bool                  `gorm:"not null"`
	PreparedBy         *uuid.UUID            `gorm:"type:uuid"`
	PreparedAt         *time.Time
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	ShippingAddress    pgtypes.AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	PickupPointID      string             `gorm:"size:64"`
	NotificationSent   bool               `gorm:"not null"`
	NotificationSentAt *time.Time
	Notes              string `gorm:"type:text"`
	Version            int    `gorm:"not null"`
	CreatedAt          time.Time
}

func (PackageDTO) TableName() string {
	return "packages"
}

func fromDomain(p *shipment.Package) PackageDTO {
	return PackageDTO{
		ID:                 p.ID().Bytes(),
		OrderID:            p.OrderID().Bytes(),
		Dimensions:         pgtypes.FromDimensions(p.Dimensions()),
		Status:             int(p.Status()),
		Carrier:            string(p.Carrier()),
		TrackingNumber:     p.TrackingNumber(),
		LabelURL:           p.LabelURL(),
		LabelCost:          p.LabelCost(),
		LabelSimulated:     p.LabelSimulated(),
		PreparedBy:         pgtypes.FromUUIDPtr(p.PreparedBy()),
		PreparedAt:         p.PreparedAt(),
		ShippedAt:          p.ShippedAt(),
		DeliveredAt:        p.DeliveredAt(),
		ShippingAddress:    pgtypes.FromAddress(p.ShippingAddress()),
		PickupPointID:      p.PickupPointID(),
		NotificationSent:   p.NotificationSent(),
		NotificationSentAt: p.NotificationSentAt(),
		Notes:              p.Notes(),
		Version:            p.Version(),
	}
}

func toDomain(dto PackageDTO) (*shipment.Package, error) {
	id, err := pgtypes.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := pgtypes.ToUUID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	preparedBy, err := pgtypes.ToUUIDPtr(dto.PreparedBy)
	if err != nil {
		return nil, err
	}
	dims, err := dto.Dimensions.ToDimensions()
	if err != nil {
		return nil, err
	}
	address, err := dto.ShippingAddress.ToAddress()
	if err != nil {
		return nil, err
	}

	return shipment.RestorePackage(shipment.RestoreParams{
		ID:                 id,
		OrderID:            orderID,
		Dimensions:         dims,
		Status:             shipment.Status(dto.Status),
		Carrier:            carrier.Type(dto.Carrier),
		TrackingNumber:     dto.TrackingNumber,
		LabelURL:           dto.LabelURL,
		LabelCost:          dto.LabelCost,
		LabelSimulated:     dto.LabelSimulated,
		PreparedBy:         preparedBy,
		PreparedAt:         dto.PreparedAt,
		ShippedAt:          dto.ShippedAt,
		DeliveredAt:        dto.DeliveredAt,
		ShippingAddress:    address,
		PickupPointID:      dto.PickupPointID,
		NotificationSent:   dto.NotificationSent,
		NotificationSentAt: dto.NotificationSentAt,
		Notes:              dto.Notes,
		Version:            dto.Version,
	})
}
