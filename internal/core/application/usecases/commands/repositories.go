// Package commands contains business operations that modify system state.
// Every handler validates its command, opens a unit of work, mutates aggregates through
// their own methods and commits.
package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PackageRepoFactory provides access to the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// ClaimRepoFactory provides access to the warranty claim repository within a transaction.
	ClaimRepoFactory interface {
		WarrantyClaimRepository() ports.WarrantyClaimRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ShipmentUoW spans a package and the order it belongs to. Package events are
	// applied to the order inside the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   pkg, err := uow.PackageRepository().Get(ctx, id)
	//   // ... mutate pkg, apply pkg.PullEvents() to the order
	//
	//   err = uow.Commit(ctx)
	ShipmentUoW interface {
		TxManager
		OrderRepoFactory
		PackageRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// WarrantyUoW reads orders and writes warranty claims.
	WarrantyUoW interface {
		TxManager
		OrderRepoFactory
		ClaimRepoFactory
	}

	// WarrantyUoWFactory creates new warranty unit of work instances.
	WarrantyUoWFactory interface {
		Create() WarrantyUoW
	}
)

// Carrier capabilities used by the shipment handlers. services.CarrierRouter provides all of them.
type (
	CarrierSupport interface {
		Supports(carrierType carrier.Type) bool
	}

	LabelIssuer interface {
		GenerateLabel(ctx context.Context, req carrier.LabelRequest) (carrier.LabelResponse, error)
	}

	ShipmentCanceller interface {
		Cancel(ctx context.Context, trackingNumber string) (bool, error)
	}

	TrackingProvider interface {
		TrackingInfo(ctx context.Context, trackingNumber string) (carrier.TrackingInfo, error)
	}

	// LabelCarrier issues labels and withdraws one that could not be stored.
	LabelCarrier interface {
		LabelIssuer
		ShipmentCanceller
	}
)
