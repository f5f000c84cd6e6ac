// Package warrantyrepo persists warranty claims with GORM in the "warranty_claims" table.
package warrantyrepo

import (
	"time"

	"fulfillment/internal/adapters/out/postgres/pgtypes"
	"fulfillment/internal/core/domain/model/warranty"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ClaimDTO is the "warranty_claims" row. (order_id, product_id) is unique.
type ClaimDTO struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID                uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_claim_order_product"`
	ProductID              uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_claim_order_product"`
	CustomerID             uuid.UUID      `gorm:"type:uuid;not null;index"`
	PurchaseDate           time.Time      `gorm:"not null"`
	WarrantyExpirationDate time.Time      `gorm:"not null"`
	IssueDescription       string         `gorm:"type:text;not null"`
	Photos                 pq.StringArray `gorm:"type:text[]"`
	Status                 int            `gorm:"type:smallint;index;not null"`
	Resolution             string         `gorm:"type:text"`
	AdminNotes             string         `gorm:"type:text"`
	ResolvedAt             *time.Time
	CreatedAt              time.Time `gorm:"not null"`
	Version                int       `gorm:"not null"`
}

func (ClaimDTO) TableName() string {
	return "warranty_claims"
}

func fromDomain(c *warranty.Claim) ClaimDTO {
	return ClaimDTO{
		ID:                     c.ID().Bytes(),
		OrderID:                c.OrderID().Bytes(),
		ProductID:              c.ProductID().Bytes(),
		CustomerID:             c.CustomerID().Bytes(),
		PurchaseDate:           c.PurchaseDate(),
		WarrantyExpirationDate: c.WarrantyExpirationDate(),
		IssueDescription:       c.IssueDescription(),
		Photos:                 pq.StringArray(c.Photos()),
		Status:                 int(c.Status()),
		Resolution:             c.Resolution(),
		AdminNotes:             c.AdminNotes(),
		ResolvedAt:             c.ResolvedAt(),
		CreatedAt:              c.CreatedAt(),
		Version:                c.Version(),
	}
}

func toDomain(dto ClaimDTO) (*warranty.Claim, error) {
	id, err := pgtypes.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := pgtypes.ToUUID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	productID, err := pgtypes.ToUUID(dto.ProductID)
	if err != nil {
		return nil, err
	}
	customerID, err := pgtypes.ToUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	return warranty.RestoreClaim(warranty.RestoreParams{
		ID:                     id,
		OrderID:                orderID,
		ProductID:              productID,
		CustomerID:             customerID,
		PurchaseDate:           dto.PurchaseDate,
		WarrantyExpirationDate: dto.WarrantyExpirationDate,
		IssueDescription:       dto.IssueDescription,
		Photos:                 []string(dto.Photos),
		Status:                 warranty.Status(dto.Status),
		Resolution:             dto.Resolution,
		AdminNotes:             dto.AdminNotes,
		ResolvedAt:             dto.ResolvedAt,
		CreatedAt:              dto.CreatedAt,
		Version:                dto.Version,
	})
}
