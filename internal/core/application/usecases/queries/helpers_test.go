package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warranty"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock = kernel.FixedClock(now)

	trackingNumber = "PS123456789PL"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("Jan Kowalski", "Lipowa 12", "Krakow", "30-001", "PL", "+48 600 100 200")
	require.NoError(t, err)
	return address
}

func warehouseAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("Fulfillment Center", "Magazynowa 1", "Warsaw", "00-950", "PL", "+48 22 000 00 00")
	require.NoError(t, err)
	return address
}

func newOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Kettle", 2, decimal.RequireFromString("49.90"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.LineItem{item}, testAddress(t), order.PaymentCompleted, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	return o
}

// labelledOrder carries tracking facts with the given delivery estimate.
func labelledOrder(t *testing.T, customerID kernel.UUID, estimate time.Time) *order.Order {
	t.Helper()
	o := newOrder(t, customerID)
	require.NoError(t, o.ApplyLabelGenerated(trackingNumber, string(carrier.Postal), &estimate))
	return o
}

func deliveredOrder(t *testing.T, customerID kernel.UUID, deliveredAt time.Time) *order.Order {
	t.Helper()
	o := labelledOrder(t, customerID, deliveredAt)
	require.NoError(t, o.ApplyShipped(trackingNumber, deliveredAt.Add(-72*time.Hour)))
	require.NoError(t, o.ApplyDelivered(deliveredAt))
	return o
}

func labelledPackage(t *testing.T, o *order.Order) *shipment.Package {
	t.Helper()
	dims, err := kernel.NewDimensions(1.2, 30, 20, 10)
	require.NoError(t, err)
	pkg, err := shipment.NewPackage(kernel.NewUUID(), o.ID(), dims, carrier.Postal, o.ShippingAddress(), "")
	require.NoError(t, err)
	require.NoError(t, pkg.ApplyLabel(carrier.LabelResponse{
		TrackingNumber:        trackingNumber,
		LabelURL:              "https://labels.example.com/" + trackingNumber + ".pdf",
		Cost:                  decimal.RequireFromString("12.99"),
		EstimatedDeliveryDate: now.AddDate(0, 0, 3),
	}, now))
	pkg.PullEvents()
	return pkg
}

func testClaim(t *testing.T, customerID kernel.UUID, expiresAt time.Time) *warranty.Claim {
	t.Helper()
	c, err := warranty.NewClaim(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), customerID,
		expiresAt.AddDate(-1, 0, 0), expiresAt, "Stopped heating", []string{"photo-1.jpg"}, now.AddDate(0, -1, 0))
	require.NoError(t, err)
	return c
}
