package packagerepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/adapters/out/postgres/pgtypes"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.PackageRepository = (*GormPackageRepository)(nil)

// GormPackageRepository implements ports.PackageRepository using GORM.
type GormPackageRepository struct {
	db *gorm.DB
}

func NewGormPackageRepository(db *gorm.DB) *GormPackageRepository {
	return &GormPackageRepository{db: db}
}

// Add saves a new package. The unique index on order_id rejects a second package.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *shipment.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgtypes.IsDuplicateKey(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("package", aggregate.OrderID().String(),
				shipment.ErrPackageAlreadyExists)
		}
		return fmt.Errorf("insert package %s: %w", aggregate.ID(), err)
	}
	return nil
}

// Update writes the package if its version is unchanged since it was read.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *shipment.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&PackageDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "order_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return fmt.Errorf("update package %s: %w", aggregate.ID(), result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&PackageDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("check package %s: %w", aggregate.ID(), err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("package", aggregate.ID().String())
	}
	return errs.NewVersionIsInvalidError("package",
		fmt.Errorf("package %s was modified concurrently (read version %d)", aggregate.ID(), aggregate.Version()))
}

// Get retrieves a package by ID.
func (r *GormPackageRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "package", id.String(), "id = ?", id.Bytes())
}

// GetByOrder retrieves the package of an order.
func (r *GormPackageRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*shipment.Package, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "package for order", orderID.String(), "order_id = ?", orderID.Bytes())
}

// ListByStatus returns all packages in status, oldest first.
func (r *GormPackageRepository) ListByStatus(ctx context.Context, status shipment.Status) ([]*shipment.Package, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).Where("status = ?", int(status)).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("list %s packages: %w", status, err)
	}

	packages := make([]*shipment.Package, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, nil
}

func (r *GormPackageRepository) first(ctx context.Context, param, id string, query string, args ...any) (*shipment.Package, error) {
	var dto PackageDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id)
		}
		return nil, fmt.Errorf("get %s %s: %w", param, id, err)
	}
	return toDomain(dto)
}
