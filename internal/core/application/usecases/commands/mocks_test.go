package commands_test

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warranty"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListDelayedCandidates(ctx context.Context, now time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *shipment.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *shipment.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Package), args.Error(1)
}

func (m *MockPackageRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*shipment.Package, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Package), args.Error(1)
}

func (m *MockPackageRepository) ListByStatus(ctx context.Context, status shipment.Status) ([]*shipment.Package, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Package), args.Error(1)
}

type MockClaimRepository struct{ mock.Mock }

func (m *MockClaimRepository) Add(ctx context.Context, c *warranty.Claim) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClaimRepository) Update(ctx context.Context, c *warranty.Claim) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClaimRepository) Get(ctx context.Context, id kernel.UUID) (*warranty.Claim, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warranty.Claim), args.Error(1)
}

func (m *MockClaimRepository) FindByOrderAndProduct(ctx context.Context, orderID, productID kernel.UUID) (*warranty.Claim, error) {
	args := m.Called(ctx, orderID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warranty.Claim), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Get(ctx context.Context, id kernel.UUID) (catalog.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Product), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

func (m *MockUoW) WarrantyClaimRepository() ports.WarrantyClaimRepository {
	args := m.Called()
	return args.Get(0).(ports.WarrantyClaimRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockWarrantyUoWFactory struct{ mock.Mock }

func (m *MockWarrantyUoWFactory) Create() commands.WarrantyUoW {
	args := m.Called()
	return args.Get(0).(commands.WarrantyUoW)
}

// MockCarriers stands in for the carrier router.
type MockCarriers struct{ mock.Mock }

func (m *MockCarriers) Supports(carrierType carrier.Type) bool {
	args := m.Called(carrierType)
	return args.Bool(0)
}

func (m *MockCarriers) GenerateLabel(ctx context.Context, req carrier.LabelRequest) (carrier.LabelResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(carrier.LabelResponse), args.Error(1)
}

func (m *MockCarriers) Cancel(ctx context.Context, trackingNumber string) (bool, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarriers) TrackingInfo(ctx context.Context, trackingNumber string) (carrier.TrackingInfo, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Get(0).(carrier.TrackingInfo), args.Error(1)
}

type MockNotificationGate struct{ mock.Mock }

func (m *MockNotificationGate) HasSent(ctx context.Context, p *shipment.Package) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationGate) MarkSent(ctx context.Context, p *shipment.Package, at time.Time) (bool, error) {
	args := m.Called(ctx, p, at)
	return args.Bool(0), args.Error(1)
}

type MockShipmentNotifier struct{ mock.Mock }

func (m *MockShipmentNotifier) NotifyShipped(ctx context.Context, o *order.Order, p *shipment.Package) error {
	args := m.Called(ctx, o, p)
	return args.Error(0)
}
