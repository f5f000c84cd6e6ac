package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans orders, packages and warranty claims in one database transaction.
// Commands call Begin, defer Rollback and finish with Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	PackageRepository() PackageRepository
	WarrantyClaimRepository() WarrantyClaimRepository
}
