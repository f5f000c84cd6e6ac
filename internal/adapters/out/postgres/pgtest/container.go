// Package pgtest starts a disposable PostgreSQL container for repository integration tests.
package pgtest

import (
	"context"
	"fmt"
	"time"

	adapter "fulfillment/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every table Migrate creates, for TRUNCATE between tests.
const Tables = "order_items, orders, packages, warranty_claims, products"

// Start runs postgres:15-alpine and returns a migrated connection. The caller terminates
// the container.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := adapter.Open(dsn, logger.Default.LogMode(logger.Silent))
	if err != nil {
		return container, nil, err
	}
	if err := adapter.Migrate(db); err != nil {
		return container, nil, fmt.Errorf("migrate: %w", err)
	}

	return container, db, nil
}

// Truncate empties every table.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + Tables + " CASCADE").Error
}
