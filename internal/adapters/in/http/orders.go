package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	actor := actorOf(c)
	customerID := actor.ID
	if body.CustomerID != "" {
		id, err := kernel.UUIDFromString(body.CustomerID)
		if err != nil {
			return s.fail(c, err)
		}
		if !actor.CanAccess(id) {
			return s.fail(c, errs.NewForbiddenError(actor.ID.String(), "customer", id))
		}
		customerID = id
	}

	items := make([]order.LineItem, 0, len(body.Items))
	var itemErrs []error
	for _, item := range body.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		li, err := order.NewLineItem(productID, item.Name, item.Quantity, item.UnitPrice)
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		items = append(items, li)
	}
	address, addressErr := body.ShippingAddress.toDomain()
	paymentStatus, paymentErr := order.ParsePaymentStatus(body.PaymentStatus)
	if err := errors.Join(errors.Join(itemErrs...), addressErr, paymentErr); err != nil {
		return s.fail(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items, address, paymentStatus)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(actorOf(c), orderID)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, fromOrderView(view))
}

// GetTrackingInfo handles GET /api/v1/orders/:id/tracking.
func (s *Server) GetTrackingInfo(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetTrackingInfoQuery(actorOf(c), orderID)
	if err != nil {
		return s.fail(c, err)
	}
	info, err := s.h.GetTrackingInfo.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, fromTrackingInfo(info))
}

// RequestReturn handles POST /api/v1/orders/:id/return. An ineligible order answers 422
// with the policy reason code.
func (s *Server) RequestReturn(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body ReturnRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewRequestReturnCommand(actorOf(c), orderID, body.Reason)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.RequestReturn.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetDelayedOrders handles GET /api/v1/admin/orders/delayed.
func (s *Server) GetDelayedOrders(c echo.Context) error {
	views, err := s.h.GetDelayedOrders.Handle(c.Request().Context(), queries.NewGetDelayedOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = fromOrderView(v)
	}
	return c.JSON(http.StatusOK, response)
}

// SetOrderStatus handles PUT /api/v1/admin/orders/:id/status.
func (s *Server) SetOrderStatus(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body StatusChange
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.SetOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateReturnStatus handles PUT /api/v1/admin/orders/:id/return-status.
func (s *Server) UpdateReturnStatus(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body ReturnStatusChange
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	returnStatus, err := order.ParseReturnStatus(body.ReturnStatus)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateReturnStatusCommand(orderID, returnStatus)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.UpdateReturnStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func pathID(c echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param("id"))
}
