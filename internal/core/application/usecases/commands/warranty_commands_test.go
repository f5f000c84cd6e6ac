package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warranty"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type warrantyMocks struct {
	factory  *MockWarrantyUoWFactory
	uow      *MockUoW
	orders   *MockOrderRepository
	claims   *MockClaimRepository
	products *MockProductCatalog
}

func newWarrantyMocks() warrantyMocks {
	return warrantyMocks{
		factory:  new(MockWarrantyUoWFactory),
		uow:      new(MockUoW),
		orders:   new(MockOrderRepository),
		claims:   new(MockClaimRepository),
		products: new(MockProductCatalog),
	}
}

// purchasedOrder was bought twelve months before filedAt.
func purchasedOrder(t *testing.T, productID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{testItem(t, productID)},
		testAddress(t), order.PaymentCompleted, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	return o
}

func fileClaim(
	t *testing.T,
	m warrantyMocks,
	o *order.Order,
	productID kernel.UUID,
	actor kernel.Actor,
	at kernel.Clock,
) error {
	t.Helper()
	cmd, err := commands.NewFileWarrantyClaimCommand(kernel.NewUUID(), actor, o.ID(), productID,
		"Stopped heating", []string{"https://photos.example.com/1.jpg"})
	require.NoError(t, err)

	handler := commands.NewFileWarrantyClaimCommandHandler(m.factory, m.products, services.NewWarrantyPolicy(), at)
	return handler.Handle(t.Context(), cmd)
}

func TestFileWarrantyClaimCommandHandler_Handle_DayBeforeExpiration(t *testing.T) {
	ctx := t.Context()
	product := testProduct(t, 24)
	o := purchasedOrder(t, product.ID())
	filedAt := o.CreatedAt().AddDate(0, 24, -1)

	m := newWarrantyMocks()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("OrderRepository").Return(m.orders).Once(),
		m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		m.products.On("Get", ctx, product.ID()).Return(product, nil).Once(),
		m.uow.On("WarrantyClaimRepository").Return(m.claims).Once(),
		m.claims.On("FindByOrderAndProduct", ctx, o.ID(), product.ID()).
			Return(nil, errs.NewObjectNotFoundError("warrantyClaim", product.ID())).Once(),
		m.claims.On("Add", ctx, mock.MatchedBy(func(c *warranty.Claim) bool {
			return c.Status() == warranty.Submitted &&
				c.CustomerID() == o.CustomerID() &&
				c.WarrantyExpirationDate().Equal(o.CreatedAt().AddDate(0, 24, 0)) &&
				len(c.Photos()) == 1
		})).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := fileClaim(t, m, o, product.ID(), kernel.NewCustomer(o.CustomerID()), kernel.FixedClock(filedAt))

	require.NoError(t, err)
	m.uow.AssertExpectations(t)
	m.claims.AssertExpectations(t)
}

func TestFileWarrantyClaimCommandHandler_Handle_DayAfterExpiration(t *testing.T) {
	ctx := t.Context()
	product := testProduct(t, 24)
	o := purchasedOrder(t, product.ID())
	filedAt := o.CreatedAt().AddDate(0, 24, 1)

	m := newWarrantyMocks()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("OrderRepository").Return(m.orders).Once(),
		m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		m.products.On("Get", ctx, product.ID()).Return(product, nil).Once(),
		m.uow.On("WarrantyClaimRepository").Return(m.claims).Once(),
		m.claims.On("FindByOrderAndProduct", ctx, o.ID(), product.ID()).
			Return(nil, errs.NewObjectNotFoundError("warrantyClaim", product.ID())).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := fileClaim(t, m, o, product.ID(), kernel.NewCustomer(o.CustomerID()), kernel.FixedClock(filedAt))

	require.ErrorIs(t, err, errs.ErrPolicyViolation)
	reason, _ := errs.ReasonOf(err)
	assert.Equal(t, services.ReasonWarrantyExpired, reason)
	m.claims.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestFileWarrantyClaimCommandHandler_Handle_SecondClaimForPair(t *testing.T) {
	ctx := t.Context()
	product := testProduct(t, 24)
	o := purchasedOrder(t, product.ID())
	existing, err := warranty.NewClaim(kernel.NewUUID(), o.ID(), product.ID(), o.CustomerID(),
		o.CreatedAt(), o.CreatedAt().AddDate(0, 24, 0), "Stopped heating", nil, now)
	require.NoError(t, err)

	m := newWarrantyMocks()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("OrderRepository").Return(m.orders).Once(),
		m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		m.products.On("Get", ctx, product.ID()).Return(product, nil).Once(),
		m.uow.On("WarrantyClaimRepository").Return(m.claims).Once(),
		m.claims.On("FindByOrderAndProduct", ctx, o.ID(), product.ID()).Return(existing, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = fileClaim(t, m, o, product.ID(), kernel.NewCustomer(o.CustomerID()), clock)

	reason, ok := errs.ReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, services.ReasonClaimAlreadyExists, reason)
}

func TestFileWarrantyClaimCommandHandler_Handle_ForeignOrderIsForbidden(t *testing.T) {
	ctx := t.Context()
	product := testProduct(t, 24)
	o := purchasedOrder(t, product.ID())

	m := newWarrantyMocks()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("OrderRepository").Return(m.orders).Once(),
		m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := fileClaim(t, m, o, product.ID(), kernel.NewCustomer(kernel.NewUUID()), clock)

	require.ErrorIs(t, err, errs.ErrForbidden)
	m.products.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestFileWarrantyClaimCommandHandler_Handle_ValidationError(t *testing.T) {
	m := newWarrantyMocks()
	handler := commands.NewFileWarrantyClaimCommandHandler(m.factory, m.products, services.NewWarrantyPolicy(), clock)

	err := handler.Handle(t.Context(), commands.FileWarrantyClaimCommand{})

	require.ErrorIs(t, err, commands.ErrFileWarrantyClaimCommandIsNotConstructed)
	m.factory.AssertNotCalled(t, "Create")
}

func TestReviewWarrantyClaimCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	claim, err := warranty.NewClaim(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		now.AddDate(-1, 0, 0), now.AddDate(1, 0, 0), "Stopped heating", nil, now)
	require.NoError(t, err)

	cmd, err := commands.NewReviewWarrantyClaimCommand(claim.ID(), warranty.Rejected, "Water damage", "Photos show corrosion")
	require.NoError(t, err)

	m := newWarrantyMocks()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("WarrantyClaimRepository").Return(m.claims).Once(),
		m.claims.On("Get", ctx, claim.ID()).Return(claim, nil).Once(),
		m.claims.On("Update", ctx, claim).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewReviewWarrantyClaimCommandHandler(m.factory, clock)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, warranty.Rejected, claim.Status())
	assert.Equal(t, "Water damage", claim.Resolution())
	require.NotNil(t, claim.ResolvedAt())
	assert.Equal(t, now, *claim.ResolvedAt())
	m.uow.AssertExpectations(t)
}

func TestReviewWarrantyClaimCommandHandler_Handle_ResolvedRequiresApproval(t *testing.T) {
	ctx := t.Context()
	claim, err := warranty.NewClaim(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		now.AddDate(-1, 0, 0), now.AddDate(1, 0, 0), "Stopped heating", nil, now)
	require.NoError(t, err)

	cmd, err := commands.NewReviewWarrantyClaimCommand(claim.ID(), warranty.Resolved, "Replaced", "")
	require.NoError(t, err)

	m := newWarrantyMocks()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("WarrantyClaimRepository").Return(m.claims).Once(),
		m.claims.On("Get", ctx, claim.ID()).Return(claim, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewReviewWarrantyClaimCommandHandler(m.factory, clock)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	assert.Equal(t, warranty.Submitted, claim.Status())
}
