package queries

import (
	"context"
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListPackagesQueryHandler reads package summaries straight from the "packages" table
// without rebuilding aggregates.
type ListPackagesQueryHandler struct {
	db *gorm.DB
}

func NewListPackagesQueryHandler(db *gorm.DB) ListPackagesQueryHandler {
	return ListPackagesQueryHandler{db: db}
}

// Handle returns the packages oldest first.
func (h ListPackagesQueryHandler) Handle(ctx context.Context, query ListPackagesQuery) ([]PackageSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packages := make([]PackageSummary, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			status,
			carrier,
			tracking_number,
			label_cost,
			created_at,
			shipped_at
		FROM packages
		WHERE ? = 0 OR status = ?
		ORDER BY created_at, id
	`, int(query.Status()), int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, orderID    uuid.UUID
			status         int
			summary        PackageSummary
			trackingNumber sql.NullString
			labelCost      decimal.Decimal
			createdAt      time.Time
			shippedAt      sql.NullTime
		)

		err = rows.Scan(
			&id,
			&orderID,
			&status,
			&summary.Carrier,
			&trackingNumber,
			&labelCost,
			&createdAt,
			&shippedAt,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		summary.Status = shipment.Status(status)
		summary.TrackingNumber = trackingNumber.String
		summary.LabelCost = labelCost
		summary.CreatedAt = createdAt
		if shippedAt.Valid {
			summary.ShippedAt = &shippedAt.Time
		}

		packages = append(packages, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
