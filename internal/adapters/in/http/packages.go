package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// CreatePackage handles POST /api/v1/admin/packages.
func (s *Server) CreatePackage(c echo.Context) error {
	var body NewPackage
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return s.fail(c, err)
	}
	carrierType, err := carrier.ParseType(body.Carrier)
	if err != nil {
		return s.fail(c, err)
	}
	dims, err := kernel.NewDimensions(body.WeightKg, body.LengthCm, body.WidthCm, body.HeightCm)
	if err != nil {
		return s.fail(c, err)
	}

	packageID := kernel.NewUUID()
	cmd, err := commands.NewCreatePackageCommand(packageID, orderID, dims, carrierType, body.PickupPointID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.CreatePackage.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: packageID.String()})
}

// ListPackages handles GET /api/v1/admin/packages?status=ReadyToShip.
func (s *Server) ListPackages(c echo.Context) error {
	status := shipment.Unknown
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := shipment.ParseStatus(raw)
		if err != nil {
			return s.fail(c, err)
		}
		status = parsed
	}

	query, err := queries.NewListPackagesQuery(status)
	if err != nil {
		return s.fail(c, err)
	}
	summaries, err := s.h.ListPackages.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]PackageSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = fromPackageSummary(summary)
	}
	return c.JSON(http.StatusOK, response)
}

// GetPackage handles GET /api/v1/admin/packages/:id.
func (s *Server) GetPackage(c echo.Context) error {
	packageID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetPackageQuery(packageID)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.h.GetPackage.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, fromPackageView(view))
}

// MarkPackagePreparing handles POST /api/v1/admin/packages/:id/prepare. The acting admin
// is recorded as the preparer.
func (s *Server) MarkPackagePreparing(c echo.Context) error {
	return packageCommand(s, c, s.h.MarkPackagePreparing, func(id kernel.UUID) (commands.MarkPackagePreparingCommand, error) {
		return commands.NewMarkPackagePreparingCommand(id, actorOf(c).ID)
	})
}

// GenerateLabel handles POST /api/v1/admin/packages/:id/label.
func (s *Server) GenerateLabel(c echo.Context) error {
	return packageCommand(s, c, s.h.GenerateLabel, commands.NewGenerateLabelCommand)
}

// GetLabelPdf handles GET /api/v1/admin/packages/:id/label.pdf.
func (s *Server) GetLabelPdf(c echo.Context) error {
	packageID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetLabelPdfQuery(packageID)
	if err != nil {
		return s.fail(c, err)
	}
	doc, err := s.h.GetLabelPdf.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+doc.Filename+`"`)
	return c.Blob(http.StatusOK, doc.ContentType, doc.Content)
}

// MarkPackageShipped handles POST /api/v1/admin/packages/:id/ship.
func (s *Server) MarkPackageShipped(c echo.Context) error {
	return packageCommand(s, c, s.h.MarkPackageShipped, commands.NewMarkPackageShippedCommand)
}

// MarkPackageDelivered handles POST /api/v1/admin/packages/:id/deliver. Without a body
// the package is delivered now.
func (s *Server) MarkPackageDelivered(c echo.Context) error {
	var body Delivery
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	var deliveredAt time.Time
	if body.DeliveredAt != nil {
		deliveredAt = *body.DeliveredAt
	}

	return packageCommand(s, c, s.h.MarkPackageDelivered, func(id kernel.UUID) (commands.MarkPackageDeliveredCommand, error) {
		return commands.NewMarkPackageDeliveredCommand(id, deliveredAt)
	})
}

// MarkPackageException handles POST /api/v1/admin/packages/:id/exception.
func (s *Server) MarkPackageException(c echo.Context) error {
	var body Note
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	return packageCommand(s, c, s.h.MarkPackageException, func(id kernel.UUID) (commands.MarkPackageExceptionCommand, error) {
		return commands.NewMarkPackageExceptionCommand(id, body.Note)
	})
}

// MarkPackageReturned handles POST /api/v1/admin/packages/:id/return.
func (s *Server) MarkPackageReturned(c echo.Context) error {
	var body Note
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	return packageCommand(s, c, s.h.MarkPackageReturned, func(id kernel.UUID) (commands.MarkPackageReturnedCommand, error) {
		return commands.NewMarkPackageReturnedCommand(id, body.Note)
	})
}

// CancelShipment handles POST /api/v1/admin/packages/:id/cancel.
func (s *Server) CancelShipment(c echo.Context) error {
	return packageCommand(s, c, s.h.CancelShipment, commands.NewCancelShipmentCommand)
}

// SyncTracking handles POST /api/v1/admin/tracking/sync.
func (s *Server) SyncTracking(c echo.Context) error {
	result, err := s.h.SyncTracking.Handle(c.Request().Context(), commands.NewSyncTrackingCommand())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, fromSyncResult(result))
}

// packageCommand runs a command addressed by the :id path parameter and answers 204.
func packageCommand[C any](
	s *Server,
	c echo.Context,
	handler CommandHandler[C],
	build func(kernel.UUID) (C, error),
) error {
	packageID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := build(packageID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = handler.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
