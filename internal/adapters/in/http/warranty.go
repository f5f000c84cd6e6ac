package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warranty"

	"github.com/labstack/echo/v4"
)

// FileWarrantyClaim handles POST /api/v1/warranty-claims.
func (s *Server) FileWarrantyClaim(c echo.Context) error {
	var body NewWarrantyClaim
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return s.fail(c, err)
	}
	productID, err := kernel.UUIDFromString(body.ProductID)
	if err != nil {
		return s.fail(c, err)
	}

	claimID := kernel.NewUUID()
	cmd, err := commands.NewFileWarrantyClaimCommand(claimID, actorOf(c), orderID, productID, body.IssueDescription, body.Photos)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.FileWarrantyClaim.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: claimID.String()})
}

// GetWarrantyClaim handles GET /api/v1/warranty-claims/:id.
func (s *Server) GetWarrantyClaim(c echo.Context) error {
	claimID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetWarrantyClaimQuery(actorOf(c), claimID)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.h.GetWarrantyClaim.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, fromClaimView(view))
}

// ReviewWarrantyClaim handles PUT /api/v1/admin/warranty-claims/:id.
func (s *Server) ReviewWarrantyClaim(c echo.Context) error {
	claimID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body ClaimReview
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	status, err := warranty.ParseStatus(body.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewReviewWarrantyClaimCommand(claimID, status, body.Resolution, body.AdminNotes)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.ReviewWarrantyClaim.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
