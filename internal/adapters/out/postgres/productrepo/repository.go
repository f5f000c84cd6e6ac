// Package productrepo reads the product catalog from the "products" table.
package productrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/adapters/out/postgres/pgtypes"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ ports.ProductCatalog = (*GormProductCatalog)(nil)

// ProductDTO is the subset of a catalog row fulfillment reads.
type ProductDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"size:200;not null"`
	WarrantyMonths int       `gorm:"not null;default:0"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// GormProductCatalog implements ports.ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// Get retrieves a product by ID.
func (c *GormProductCatalog) Get(ctx context.Context, id kernel.UUID) (catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return catalog.Product{}, err
	}

	var dto ProductDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Product{}, errs.NewObjectNotFoundError("product", id.String())
		}
		return catalog.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}

	productID, err := pgtypes.ToUUID(dto.ID)
	if err != nil {
		return catalog.Product{}, err
	}
	return catalog.NewProduct(productID, dto.Name, dto.WarrantyMonths)
}

// Save inserts or replaces a catalog entry. The catalog is owned by another service;
// Save exists for seeding.
func (c *GormProductCatalog) Save(ctx context.Context, p catalog.Product) error {
	dto := ProductDTO{ID: p.ID().Bytes(), Name: p.Name(), WarrantyMonths: p.WarrantyMonths()}
	if err := c.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return fmt.Errorf("save product %s: %w", p.ID(), err)
	}
	return nil
}
