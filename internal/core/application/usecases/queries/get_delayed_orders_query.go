package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetDelayedOrdersQueryIsNotConstructed = errors.New(
	"GetDelayedOrdersQuery must be created via NewGetDelayedOrdersQuery constructor",
)

// GetDelayedOrdersQuery lists the orders whose delivery estimate has passed. Admin only.
type GetDelayedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDelayedOrdersQuery creates a parameterless query.
func NewGetDelayedOrdersQuery() GetDelayedOrdersQuery {
	return GetDelayedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDelayedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDelayedOrdersQueryIsNotConstructed)
}
