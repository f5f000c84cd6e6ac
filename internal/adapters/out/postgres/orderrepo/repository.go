package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgtypes"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a repository bound to db, which may be a transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgtypes.IsDuplicateKey(err) {
			return errs.NewObjectAlreadyExistsError("order", aggregate.ID().String())
		}
		return fmt.Errorf("insert order %s: %w", aggregate.ID(), err)
	}
	return nil
}

// Update writes the order row if its version is unchanged since it was read and bumps
// the version. Line items are immutable after checkout and are not rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "customer_id", "created_at", "Items").
		Updates(&dto)
	if result.Error != nil {
		return fmt.Errorf("update order %s: %w", aggregate.ID(), result.Error)
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate)
	}
	return nil
}

// missingOrStale tells a deleted order apart from a concurrent modification.
func (r *GormOrderRepository) missingOrStale(ctx context.Context, aggregate *order.Order) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", aggregate.ID().Bytes()).Count(&count).Error; err != nil {
		return fmt.Errorf("check order %s: %w", aggregate.ID(), err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return errs.NewVersionIsInvalidError("order",
		fmt.Errorf("order %s was modified concurrently (read version %d)", aggregate.ID(), aggregate.Version()))
}

// Get retrieves an order by ID with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}

	return toDomain(dto)
}

// ListDelayedCandidates returns orders past their estimated delivery date that are
// neither delivered nor cancelled, oldest estimate first.
func (r *GormOrderRepository) ListDelayedCandidates(ctx context.Context, now time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withItems(ctx).
		Where("estimated_delivery_date IS NOT NULL AND estimated_delivery_date < ?", now).
		Where("status NOT IN ?", []int{int(order.Delivered), int(order.Cancelled)}).
		Order("estimated_delivery_date").
		Find(&dtos).Error
	if err != nil {
		return nil, fmt.Errorf("list delayed orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
