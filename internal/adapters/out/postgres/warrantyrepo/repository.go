package warrantyrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/adapters/out/postgres/pgtypes"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warranty"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.WarrantyClaimRepository = (*GormClaimRepository)(nil)

// GormClaimRepository implements ports.WarrantyClaimRepository using GORM.
type GormClaimRepository struct {
	db *gorm.DB
}

func NewGormClaimRepository(db *gorm.DB) *GormClaimRepository {
	return &GormClaimRepository{db: db}
}

// Add saves a new claim. A second claim for the same order and product is rejected.
func (r *GormClaimRepository) Add(ctx context.Context, claim *warranty.Claim) error {
	if err := claim.Validate(); err != nil {
		return err
	}

	dto := fromDomain(claim)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgtypes.IsDuplicateKey(err) {
			return errs.NewObjectAlreadyExistsError("warranty claim",
				fmt.Sprintf("order %s product %s", claim.OrderID(), claim.ProductID()))
		}
		return fmt.Errorf("insert warranty claim %s: %w", claim.ID(), err)
	}
	return nil
}

// Update writes the claim if its version is unchanged since it was read.
func (r *GormClaimRepository) Update(ctx context.Context, claim *warranty.Claim) error {
	if err := claim.Validate(); err != nil {
		return err
	}

	dto := fromDomain(claim)
	dto.Version = claim.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&ClaimDTO{}).
		Where("id = ? AND version = ?", dto.ID, claim.Version()).
		Select("status", "resolution", "admin_notes", "resolved_at", "version").
		Updates(&dto)
	if result.Error != nil {
		return fmt.Errorf("update warranty claim %s: %w", claim.ID(), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("warranty claim",
			fmt.Errorf("claim %s is missing or was modified concurrently", claim.ID()))
	}
	return nil
}

// Get retrieves a claim by ID.
func (r *GormClaimRepository) Get(ctx context.Context, id kernel.UUID) (*warranty.Claim, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClaimDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warranty claim", id.String())
		}
		return nil, fmt.Errorf("get warranty claim %s: %w", id, err)
	}
	return toDomain(dto)
}

// FindByOrderAndProduct retrieves the claim filed for a product of an order.
func (r *GormClaimRepository) FindByOrderAndProduct(ctx context.Context, orderID, productID kernel.UUID) (*warranty.Claim, error) {
	var dto ClaimDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID.Bytes(), productID.Bytes()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warranty claim",
				fmt.Sprintf("order %s product %s", orderID, productID))
		}
		return nil, fmt.Errorf("find warranty claim: %w", err)
	}
	return toDomain(dto)
}
