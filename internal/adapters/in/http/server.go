// Package http exposes the fulfillment use cases over a JSON API built on echo.
// Identity comes from the X-User-ID and X-User-Role headers set by the upstream gateway.
package http

import (
	"context"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/carrier"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// CommandHandler is any use case that changes state and returns only an error.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is any use case that returns a result.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups the use cases served by the API.
type Handlers struct {
	CreateOrder        CommandHandler[commands.CreateOrderCommand]
	SetOrderStatus     CommandHandler[commands.SetOrderStatusCommand]
	RequestReturn      CommandHandler[commands.RequestReturnCommand]
	UpdateReturnStatus CommandHandler[commands.UpdateReturnStatusCommand]

	CreatePackage        CommandHandler[commands.CreatePackageCommand]
	MarkPackagePreparing CommandHandler[commands.MarkPackagePreparingCommand]
	GenerateLabel        CommandHandler[commands.GenerateLabelCommand]
	MarkPackageShipped   CommandHandler[commands.MarkPackageShippedCommand]
	MarkPackageDelivered CommandHandler[commands.MarkPackageDeliveredCommand]
	MarkPackageException CommandHandler[commands.MarkPackageExceptionCommand]
	MarkPackageReturned  CommandHandler[commands.MarkPackageReturnedCommand]
	CancelShipment       CommandHandler[commands.CancelShipmentCommand]
	SyncTracking         QueryHandler[commands.SyncTrackingCommand, commands.SyncTrackingResult]

	FileWarrantyClaim   CommandHandler[commands.FileWarrantyClaimCommand]
	ReviewWarrantyClaim CommandHandler[commands.ReviewWarrantyClaimCommand]

	GetOrder         QueryHandler[queries.GetOrderQuery, queries.OrderView]
	GetDelayedOrders QueryHandler[queries.GetDelayedOrdersQuery, []queries.OrderView]
	GetTrackingInfo  QueryHandler[queries.GetTrackingInfoQuery, carrier.TrackingInfo]
	GetPackage       QueryHandler[queries.GetPackageQuery, queries.PackageView]
	ListPackages     QueryHandler[queries.ListPackagesQuery, []queries.PackageSummary]
	GetLabelPdf      QueryHandler[queries.GetLabelPdfQuery, queries.LabelDocument]
	GetWarrantyClaim QueryHandler[queries.GetWarrantyClaimQuery, queries.ClaimView]
}

// Server routes HTTP requests to the application use cases.
type Server struct {
	h      Handlers
	logger *zap.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{h: handlers, logger: logger.With(zap.String("component", "http"))}
}

// Register mounts the API on e.
//
//	GET  /health
//	POST /api/v1/orders                          GET /api/v1/orders/:id
//	GET  /api/v1/orders/:id/tracking             POST /api/v1/orders/:id/return
//	POST /api/v1/warranty-claims                 GET /api/v1/warranty-claims/:id
//	/api/v1/admin/...                            admin only
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = errorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(s.requestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", authenticate)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/tracking", s.GetTrackingInfo)
	api.POST("/orders/:id/return", s.RequestReturn)
	api.POST("/warranty-claims", s.FileWarrantyClaim)
	api.GET("/warranty-claims/:id", s.GetWarrantyClaim)

	admin := api.Group("/admin", requireAdmin)
	admin.GET("/orders/delayed", s.GetDelayedOrders)
	admin.PUT("/orders/:id/status", s.SetOrderStatus)
	admin.PUT("/orders/:id/return-status", s.UpdateReturnStatus)

	admin.GET("/packages", s.ListPackages)
	admin.POST("/packages", s.CreatePackage)
	admin.GET("/packages/:id", s.GetPackage)
	admin.POST("/packages/:id/prepare", s.MarkPackagePreparing)
	admin.POST("/packages/:id/label", s.GenerateLabel)
	admin.GET("/packages/:id/label.pdf", s.GetLabelPdf)
	admin.POST("/packages/:id/ship", s.MarkPackageShipped)
	admin.POST("/packages/:id/deliver", s.MarkPackageDelivered)
	admin.POST("/packages/:id/exception", s.MarkPackageException)
	admin.POST("/packages/:id/return", s.MarkPackageReturned)
	admin.POST("/packages/:id/cancel", s.CancelShipment)
	admin.POST("/tracking/sync", s.SyncTracking)

	admin.PUT("/warranty-claims/:id", s.ReviewWarrantyClaim)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	})
}
