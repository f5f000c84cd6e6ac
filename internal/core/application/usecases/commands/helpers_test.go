package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock = kernel.FixedClock(now)

	trackingNumber = "EX0123456789"
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

func testProduct(t *testing.T, warrantyMonths int) catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(kernel.NewUUID(), "Kettle", warrantyMonths)
	require.NoError(t, err)
	return product
}

func testItem(t *testing.T, productID kernel.UUID) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(productID, "Kettle", 1, decimal.RequireFromString("49.90"))
	require.NoError(t, err)
	return item
}

// pendingOrder is created at now with one item of productID.
func pendingOrder(t *testing.T, productID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{testItem(t, productID)},
		testAddress(t), order.PaymentCompleted, now)
	require.NoError(t, err)
	return o
}

// deliveredOrder was shipped and delivered at deliveredAt.
func deliveredOrder(t *testing.T, deliveredAt time.Time) *order.Order {
	t.Helper()
	o := pendingOrder(t, kernel.NewUUID())
	require.NoError(t, o.ApplyShipped(trackingNumber, deliveredAt.Add(-48*time.Hour)))
	require.NoError(t, o.SetStatus(order.Delivered, deliveredAt))
	return o
}

func testPackage(t *testing.T, o *order.Order) *shipment.Package {
	t.Helper()
	dims, err := kernel.NewDimensions(1.2, 30, 20, 10)
	require.NoError(t, err)
	pkg, err := shipment.NewPackage(kernel.NewUUID(), o.ID(), dims, carrier.Express, o.ShippingAddress(), "")
	require.NoError(t, err)
	return pkg
}

func labelResponse() carrier.LabelResponse {
	return carrier.LabelResponse{
		TrackingNumber:        trackingNumber,
		LabelURL:              "https://labels.example.com/" + trackingNumber + ".pdf",
		Cost:                  decimal.RequireFromString("19.99"),
		EstimatedDeliveryDate: now.AddDate(0, 0, 1),
	}
}

// readyPackage has a label and no pending events.
func readyPackage(t *testing.T, o *order.Order) *shipment.Package {
	t.Helper()
	pkg := testPackage(t, o)
	require.NoError(t, pkg.ApplyLabel(labelResponse(), now))
	pkg.PullEvents()
	return pkg
}

// shippedPackage has shipped and no pending events.
func shippedPackage(t *testing.T, o *order.Order) *shipment.Package {
	t.Helper()
	pkg := readyPackage(t, o)
	require.NoError(t, pkg.MarkShipped(now))
	pkg.PullEvents()
	return pkg
}
