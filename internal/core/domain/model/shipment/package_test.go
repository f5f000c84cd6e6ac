package shipment_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 2, 9, 30, 0, 0, time.UTC)

func address(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress("Jane Roe", "1 Main St", "Springfield", "12345", "US", "+1 555 0100")
	require.NoError(t, err)
	return a
}

func newPackage(t *testing.T) *shipment.Package {
	t.Helper()
	dims, err := kernel.NewDimensions(1.2, 30, 20, 10)
	require.NoError(t, err)
	p, err := shipment.NewPackage(kernel.NewUUID(), kernel.NewUUID(), dims, carrier.Express, address(t), "")
	require.NoError(t, err)
	return p
}

func labelResponse() carrier.LabelResponse {
	return carrier.LabelResponse{
		TrackingNumber:        "EX0123456789",
		LabelURL:              "https://labels.example.com/EX0123456789.pdf",
		Cost:                  decimal.RequireFromString("12.40"),
		EstimatedDeliveryDate: now.AddDate(0, 0, 1),
	}
}

func labelled(t *testing.T) *shipment.Package {
	t.Helper()
	p := newPackage(t)
	require.NoError(t, p.ApplyLabel(labelResponse(), now))
	p.PullEvents()
	return p
}

func TestNewPackage(t *testing.T) {
	t.Run("should start pending with copied address", func(t *testing.T) {
		p := newPackage(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, shipment.Pending, p.Status())
		assert.Equal(t, "Springfield", p.ShippingAddress().City())
		assert.Empty(t, p.TrackingNumber())
		assert.True(t, p.LabelCost().IsZero())
		assert.Empty(t, p.PullEvents())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		p, err := shipment.NewPackage(kernel.UUID{}, kernel.UUID{}, kernel.Dimensions{}, "", kernel.Address{}, "")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrDimensionsIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
		assert.Contains(t, err.Error(), "orderId")
		assert.Contains(t, err.Error(), "carrier")
	})
}

func TestPackage_MarkPreparing(t *testing.T) {
	p := newPackage(t)
	admin := kernel.NewUUID()

	require.NoError(t, p.MarkPreparing(admin, now))

	assert.Equal(t, shipment.Preparing, p.Status())
	assert.True(t, p.PreparedBy().IsEqual(admin))

	require.ErrorIs(t, p.MarkPreparing(kernel.UUID{}, now), errs.ErrValueIsRequired)

	shipped := labelled(t)
	require.NoError(t, shipped.MarkShipped(now))
	require.ErrorIs(t, shipped.MarkPreparing(admin, now), errs.ErrInvalidStateTransition)
}

func TestPackage_ApplyLabel(t *testing.T) {
	t.Run("should store label and record ReadyToShip", func(t *testing.T) {
		p := newPackage(t)

		require.NoError(t, p.ApplyLabel(labelResponse(), now))

		assert.Equal(t, shipment.ReadyToShip, p.Status())
		assert.Equal(t, "EX0123456789", p.TrackingNumber())
		assert.Equal(t, "https://labels.example.com/EX0123456789.pdf", p.LabelURL())
		assert.True(t, decimal.RequireFromString("12.40").Equal(p.LabelCost()))
		assert.Equal(t, now, *p.PreparedAt())

		events := p.PullEvents()
		require.Len(t, events, 1)
		ready, ok := events[0].(shipment.PackageReadyToShip)
		require.True(t, ok)
		assert.Equal(t, "EX0123456789", ready.TrackingNumber)
		assert.True(t, ready.OrderID().IsEqual(p.OrderID()))
		assert.Equal(t, now.AddDate(0, 0, 1), ready.EstimatedDeliveryDate)
		assert.Empty(t, p.PullEvents())
	})

	t.Run("should fail second time with LabelAlreadyGenerated", func(t *testing.T) {
		p := labelled(t)

		err := p.ApplyLabel(labelResponse(), now)

		require.ErrorIs(t, err, shipment.ErrLabelAlreadyGenerated)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Empty(t, p.PullEvents())
	})

	t.Run("should fail after shipping without LabelAlreadyGenerated", func(t *testing.T) {
		p := labelled(t)
		require.NoError(t, p.MarkShipped(now))

		err := p.CanGenerateLabel()

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.NotErrorIs(t, err, shipment.ErrLabelAlreadyGenerated)
	})

	t.Run("should reject partial carrier response", func(t *testing.T) {
		p := newPackage(t)
		resp := labelResponse()
		resp.LabelURL = ""

		err := p.ApplyLabel(resp, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, shipment.Pending, p.Status())
		assert.Empty(t, p.TrackingNumber())
	})
}

func TestPackage_CancelLabel(t *testing.T) {
	p := labelled(t)

	require.NoError(t, p.CancelLabel(now))

	assert.Equal(t, shipment.Preparing, p.Status())
	assert.Empty(t, p.TrackingNumber())
	assert.Empty(t, p.LabelURL())
	events := p.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "EX0123456789", events[0].(shipment.LabelCancelled).TrackingNumber)

	require.ErrorIs(t, p.CancelLabel(now), errs.ErrInvalidStateTransition)
	require.NoError(t, p.ApplyLabel(labelResponse(), now))
}

func TestPackage_MarkShipped(t *testing.T) {
	t.Run("should fail before label with MissingTrackingNumber", func(t *testing.T) {
		p := newPackage(t)

		err := p.MarkShipped(now)

		require.ErrorIs(t, err, shipment.ErrMissingTrackingNumber)
		assert.Equal(t, shipment.Pending, p.Status())
	})

	t.Run("should ship and record event", func(t *testing.T) {
		p := labelled(t)

		require.NoError(t, p.MarkShipped(now))

		assert.Equal(t, shipment.Shipped, p.Status())
		assert.Equal(t, now, *p.ShippedAt())
		events := p.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "package.shipped", events[0].EventName())
	})

	t.Run("should fail second ship with InvalidStateTransition", func(t *testing.T) {
		p := labelled(t)
		require.NoError(t, p.MarkShipped(now))
		p.PullEvents()

		err := p.MarkShipped(now.Add(time.Minute))

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		require.ErrorIs(t, err, shipment.ErrNotReadyToShip)
		assert.Equal(t, now, *p.ShippedAt())
		assert.Empty(t, p.PullEvents())
	})
}

func TestPackage_TerminalBranches(t *testing.T) {
	shipped := func(t *testing.T) *shipment.Package {
		t.Helper()
		p := labelled(t)
		require.NoError(t, p.MarkShipped(now))
		p.PullEvents()
		return p
	}

	t.Run("should deliver shipped package", func(t *testing.T) {
		p := shipped(t)
		at := now.AddDate(0, 0, 1)

		require.NoError(t, p.MarkDelivered(at))

		assert.Equal(t, shipment.Delivered, p.Status())
		assert.Equal(t, at, *p.DeliveredAt())
		events := p.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, at, events[0].(shipment.PackageDelivered).DeliveredAt)
		require.ErrorIs(t, p.MarkReturned("late"), errs.ErrInvalidStateTransition)
	})

	t.Run("should allow delivery after exception", func(t *testing.T) {
		p := shipped(t)

		require.NoError(t, p.MarkException("address unreadable"))
		assert.Equal(t, shipment.Exception, p.Status())
		require.NoError(t, p.MarkDelivered(now))
		assert.Equal(t, "address unreadable", p.Notes())
	})

	t.Run("should return after exception and keep notes", func(t *testing.T) {
		p := shipped(t)

		require.NoError(t, p.MarkException("damaged"))
		require.NoError(t, p.MarkReturned("sent back to warehouse"))

		assert.Equal(t, shipment.Returned, p.Status())
		assert.Equal(t, "damaged\nsent back to warehouse", p.Notes())
	})

	t.Run("should reject terminal moves before shipping", func(t *testing.T) {
		p := newPackage(t)
		require.ErrorIs(t, p.MarkDelivered(now), errs.ErrInvalidStateTransition)
		require.ErrorIs(t, p.MarkException("x"), errs.ErrInvalidStateTransition)
		require.ErrorIs(t, p.MarkReturned("x"), errs.ErrInvalidStateTransition)
	})
}

func TestPackage_Label(t *testing.T) {
	from := address(t)

	_, err := newPackage(t).Label(from)
	require.ErrorIs(t, err, shipment.ErrMissingTrackingNumber)

	p := labelled(t)
	label, err := p.Label(from)
	require.NoError(t, err)
	assert.Equal(t, "EX0123456789", label.TrackingNumber)
	assert.Equal(t, p.OrderID().String(), label.Reference)
	assert.Equal(t, carrier.Express, label.Carrier)
}

func TestPackage_RecordNotificationSent(t *testing.T) {
	p := labelled(t)

	p.RecordNotificationSent(now)
	p.RecordNotificationSent(now.Add(time.Hour))

	assert.True(t, p.NotificationSent())
	assert.Equal(t, now, *p.NotificationSentAt())
}

func TestRestorePackage(t *testing.T) {
	dims, _ := kernel.NewDimensions(2, 10, 10, 10)

	p, err := shipment.RestorePackage(shipment.RestoreParams{
		ID:              kernel.NewUUID(),
		OrderID:         kernel.NewUUID(),
		Dimensions:      dims,
		Status:          shipment.ReadyToShip,
		Carrier:         carrier.Postal,
		TrackingNumber:  "PS123456789PL",
		LabelURL:        "https://labels.example.com/PS123456789PL.pdf",
		LabelCost:       decimal.RequireFromString("5.10"),
		ShippingAddress: address(t),
		Version:         2,
	})

	require.NoError(t, err)
	assert.Equal(t, shipment.ReadyToShip, p.Status())
	assert.Equal(t, 2, p.Version())
	assert.Empty(t, p.PullEvents())

	_, err = shipment.RestorePackage(shipment.RestoreParams{})
	require.Error(t, err)
}

func TestStatus(t *testing.T) {
	s, err := shipment.ParseStatus("readytoship")
	require.NoError(t, err)
	assert.Equal(t, shipment.ReadyToShip, s)
	assert.True(t, s.IsLabelled())
	assert.False(t, s.HasLeftWarehouse())
	assert.True(t, shipment.Exception.HasLeftWarehouse())
	require.Error(t, shipment.Unknown.Validate())
	_, err = shipment.ParseStatus("lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
