package cmd

import (
	"fmt"

	api "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/carriers"
	"fulfillment/internal/adapters/out/label"
	"fulfillment/internal/adapters/out/notify"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/packagerepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/adapters/out/postgres/warrantyrepo"
	"fulfillment/internal/adapters/out/redisgate"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, policies and use cases together.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	logger     *zap.Logger

	warehouse kernel.Address
	router    *services.CarrierRouter
	gate      *redisgate.Gate
	notifier  *notify.LogNotifier
	renderer  *label.PDFRenderer

	returns  services.ReturnPolicy
	monitor  services.DeliveryMonitor
	warranty services.WarrantyPolicy
}

// NewCompositionRoot fails when the warehouse address in config is incomplete.
func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *zap.Logger) (*CompositionRoot, error) {
	warehouse, err := config.Warehouse.Address()
	if err != nil {
		return nil, fmt.Errorf("warehouse address: %w", err)
	}

	clock := kernel.SystemClock{}
	c := config.Carriers

	router := services.NewCarrierRouter(c.ProbeTimeout,
		carriers.NewPostal(c.PostalLabelBaseURL, clock, logger),
		carriers.NewExpress(c.ExpressLabelBaseURL, clock, logger),
		carriers.NewPickupPoint(c.PickupPointLabelBaseURL, clock, logger),
		carriers.NewAPICarrier(carriers.APISettings{
			BaseURL:       c.CourierAPIBaseURL,
			APIKey:        c.CourierAPIKey,
			LabelBaseURL:  c.CourierAPILabelBaseURL,
			Timeout:       c.CourierAPITimeout,
			RatePerSecond: c.CourierAPIRate,
			Burst:         c.CourierAPIBurst,
		}, clock, logger),
	)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock,
		logger:     logger,
		warehouse:  warehouse,
		router:     router,
		gate:       redisgate.NewGate(redisClient, config.Redis.NotificationTTL),
		notifier:   notify.NewLogNotifier(logger),
		renderer:   label.NewPDFRenderer(c.LabelIssuer),
		returns:    services.NewReturnPolicy(),
		monitor:    services.NewDeliveryMonitor(),
		warranty:   services.NewWarrantyPolicy(),
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) warrantyUoWFactory() commands.WarrantyUoWFactory {
	return FuncWarrantyUoWFactory(func() commands.WarrantyUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSyncTrackingCommandHandler() commands.SyncTrackingCommandHandler {
	return commands.NewSyncTrackingCommandHandler(c.shipmentUoWFactory(), c.router, c.logger)
}

func (c *CompositionRoot) CreateGetDelayedOrdersQueryHandler() queries.GetDelayedOrdersQueryHandler {
	return queries.NewGetDelayedOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB), c.returns, c.monitor, c.clock)
}

// Handlers builds every use case served by the HTTP adapter.
func (c *CompositionRoot) Handlers() api.Handlers {
	orders := orderrepo.NewGormOrderRepository(c.gormDB)
	packages := packagerepo.NewGormPackageRepository(c.gormDB)
	claims := warrantyrepo.NewGormClaimRepository(c.gormDB)
	catalog := productrepo.NewGormProductCatalog(c.gormDB)

	return api.Handlers{
		CreateOrder:        commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock),
		SetOrderStatus:     commands.NewSetOrderStatusCommandHandler(c.orderUoWFactory(), c.clock),
		RequestReturn:      commands.NewRequestReturnCommandHandler(c.orderUoWFactory(), c.returns, c.clock),
		UpdateReturnStatus: commands.NewUpdateReturnStatusCommandHandler(c.orderUoWFactory()),

		CreatePackage:        commands.NewCreatePackageCommandHandler(c.shipmentUoWFactory(), c.router),
		MarkPackagePreparing: commands.NewMarkPackagePreparingCommandHandler(c.shipmentUoWFactory(), c.clock),
		GenerateLabel: commands.NewGenerateLabelCommandHandler(
			c.shipmentUoWFactory(), c.router, c.warehouse, c.clock, c.logger),
		MarkPackageShipped: commands.NewMarkPackageShippedCommandHandler(
			c.shipmentUoWFactory(), c.gate, c.notifier, c.clock, c.logger),
		MarkPackageDelivered: commands.NewMarkPackageDeliveredCommandHandler(c.shipmentUoWFactory(), c.clock),
		MarkPackageException: commands.NewMarkPackageExceptionCommandHandler(c.shipmentUoWFactory()),
		MarkPackageReturned:  commands.NewMarkPackageReturnedCommandHandler(c.shipmentUoWFactory()),
		CancelShipment:       commands.NewCancelShipmentCommandHandler(c.shipmentUoWFactory(), c.router, c.clock),
		SyncTracking:         c.CreateSyncTrackingCommandHandler(),

		FileWarrantyClaim: commands.NewFileWarrantyClaimCommandHandler(
			c.warrantyUoWFactory(), catalog, c.warranty, c.clock),
		ReviewWarrantyClaim: commands.NewReviewWarrantyClaimCommandHandler(c.warrantyUoWFactory(), c.clock),

		GetOrder:         queries.NewGetOrderQueryHandler(orders, c.returns, c.monitor, c.clock),
		GetDelayedOrders: c.CreateGetDelayedOrdersQueryHandler(),
		GetTrackingInfo:  queries.NewGetTrackingInfoQueryHandler(orders, c.router),
		GetPackage:       queries.NewGetPackageQueryHandler(packages),
		ListPackages:     queries.NewListPackagesQueryHandler(c.gormDB),
		GetLabelPdf:      queries.NewGetLabelPdfQueryHandler(packages, c.renderer, c.warehouse),
		GetWarrantyClaim: queries.NewGetWarrantyClaimQueryHandler(claims, c.warranty, c.clock),
	}
}

// JobManager builds the background jobs on the configured schedules.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSyncTrackingCommandHandler(),
		c.CreateGetDelayedOrdersQueryHandler(),
		jobs.Schedules{
			TrackingSync:        c.config.Jobs.TrackingSyncSchedule,
			DelayedOrdersReport: c.config.Jobs.DelayedOrdersReportSchedule,
		},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncWarrantyUoWFactory func() commands.WarrantyUoW

func (f FuncWarrantyUoWFactory) Create() commands.WarrantyUoW {
	return f()
}
