package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Reason is the policy reason code, e.g. WINDOW_EXPIRED.
	Reason    string `json:"reason,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// StatusOf maps an error kind to its HTTP status. Unknown errors are 500.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrPolicyViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, shipment.ErrMissingTrackingNumber):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrUnsupportedCarrier):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c echo.Context, err error) error {
	code := StatusOf(err)
	body := Error{
		Code:      code,
		Message:   err.Error(),
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	}
	if reason, ok := errs.ReasonOf(err); ok {
		body.Reason = reason
	}

	if code == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		body.Message = http.StatusText(code)
	}
	return c.JSON(code, body)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:      http.StatusBadRequest,
		Message:   message,
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	})
}

// errorHandler renders echo's own errors (unknown route, bad method) in the same shape.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	_ = c.JSON(code, Error{
		Code:      code,
		Message:   message,
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
