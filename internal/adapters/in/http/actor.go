package http

import (
	"net/http"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderUserID carries the authenticated user id set by the gateway.
	HeaderUserID = "X-User-ID"
	// HeaderUserRole is "admin" for privileged users.
	HeaderUserRole = "X-User-Role"

	actorKey  = "actor"
	roleAdmin = "admin"
)

// authenticate turns the identity headers set by the gateway into a kernel.Actor.
// Requests without a valid user id are rejected with 401.
func authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := kernel.UUIDFromString(c.Request().Header.Get(HeaderUserID))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "missing or invalid " + HeaderUserID + " header",
			})
		}

		actor := kernel.NewCustomer(id)
		if strings.EqualFold(c.Request().Header.Get(HeaderUserRole), roleAdmin) {
			actor = kernel.NewAdmin(id)
		}
		c.Set(actorKey, actor)
		return next(c)
	}
}

// requireAdmin must run after authenticate.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !actorOf(c).Admin {
			return c.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "admin role required",
			})
		}
		return next(c)
	}
}

func actorOf(c echo.Context) kernel.Actor {
	actor, _ := c.Get(actorKey).(kernel.Actor)
	return actor
}
