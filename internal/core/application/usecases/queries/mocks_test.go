package queries_test

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warranty"

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

type MockTrackingProvider struct{ mock.Mock }

func (m *MockTrackingProvider) TrackingInfo(ctx context.Context, trackingNumber string) (carrier.TrackingInfo, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Get(0).(carrier.TrackingInfo), args.Error(1)
}

type MockLabelRenderer struct{ mock.Mock }

func (m *MockLabelRenderer) Render(ctx context.Context, label shipment.Label) ([]byte, string, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
