package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

func dayN(n int) time.Time { return day0.AddDate(0, 0, n) }

func newOrderWithProduct(t *testing.T, productID kernel.UUID, createdAt time.Time) *order.Order {
	t.Helper()
	addr, err := kernel.NewAddress("Jane Roe", "1 Main St", "Springfield", "12345", "US", "")
	require.NoError(t, err)
	item, err := order.NewLineItem(productID, "Blender", 1, decimal.RequireFromString("89.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item}, addr, order.PaymentCompleted, createdAt)
	require.NoError(t, err)
	return o
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	return newOrderWithProduct(t, kernel.NewUUID(), day0)
}

func deliveredOn(t *testing.T, at time.Time) *order.Order {
	t.Helper()
	o := pendingOrder(t)
	require.NoError(t, o.ApplyShipped("PS123456789PL", at.Add(-24*time.Hour)))
	require.NoError(t, o.ApplyDelivered(at))
	return o
}
