package postgres_test

import (
	"context"
	"testing"
	"time"

	adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// UnitOfWorkIntegrationTestSuite checks transaction boundaries across the repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrderAndPackage() (*order.Order, *shipment.Package) {
	address, err := kernel.NewAddress("Jan Kowalski", "Lipowa 12", "Krakow", "30-001", "PL", "+48 600 100 200")
	suite.Require().NoError(err)
	item, err := order.NewLineItem(kernel.NewUUID(), "Kettle", 1, decimal.RequireFromString("49.90"))
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item}, address, order.PaymentCompleted, now)
	suite.Require().NoError(err)

	dims, err := kernel.NewDimensions(1.2, 30, 20, 10)
	suite.Require().NoError(err)
	pkg, err := shipment.NewPackage(kernel.NewUUID(), o.ID(), dims, carrier.Express, address, "")
	suite.Require().NoError(err)
	return o, pkg
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "commit without begin")
	suite.Require().Error(uow.Rollback(ctx), "rollback without begin")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	o, pkg := suite.newOrderAndPackage()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.PackageRepository().Add(ctx, pkg))
	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	_, err := fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	got, err := fresh.PackageRepository().GetByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(pkg.ID(), got.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	o, pkg := suite.newOrderAndPackage()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.PackageRepository().Add(ctx, pkg))
	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err := fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.PackageRepository().Get(ctx, pkg.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFailedStep_LeavesNoPartialWrite() {
	ctx := context.Background()
	o, pkg := suite.newOrderAndPackage()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, o))
	suite.Require().NoError(setup.PackageRepository().Add(ctx, pkg))
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.PackageRepository().Get(ctx, pkg.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.MarkPreparing(kernel.NewUUID(), now))
	suite.Require().NoError(uow.PackageRepository().Update(ctx, loaded))

	_, other := suite.newOrderAndPackage()
	duplicate, err := shipment.NewPackage(kernel.NewUUID(), o.ID(), other.Dimensions(), carrier.Postal, other.ShippingAddress(), "")
	suite.Require().NoError(err)
	suite.Require().ErrorIs(uow.PackageRepository().Add(ctx, duplicate), errs.ErrObjectAlreadyExists)
	suite.Require().NoError(uow.Rollback(ctx))

	got, err := suite.factory.Create().PackageRepository().Get(ctx, pkg.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Pending, got.Status())
	suite.Equal(0, got.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestProductCatalog() {
	ctx := context.Background()
	products := productrepo.NewGormProductCatalog(suite.db)
	p, err := catalog.NewProduct(kernel.NewUUID(), "Kettle", 24)
	suite.Require().NoError(err)

	suite.Require().NoError(products.Save(ctx, p))

	got, err := products.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("Kettle", got.Name())
	suite.Equal(24, got.WarrantyMonths())

	_, err = products.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
