package order_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type eligibilityFunc func(o *order.Order, now time.Time) error

func (f eligibilityFunc) CheckReturn(o *order.Order, now time.Time) error { return f(o, now) }

var alwaysEligible = eligibilityFunc(func(*order.Order, time.Time) error { return nil })

func newAddress(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress("Jane Roe", "1 Main St", "Springfield", "12345", "US", "")
	require.NoError(t, err)
	return a
}

func newItem(t *testing.T, qty int, price string) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Kettle", qty, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, items ...order.LineItem) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.LineItem{newItem(t, 1, "10.00")}
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, newAddress(t), order.PaymentCompleted, day0)
	require.NoError(t, err)
	return o
}

func deliveredOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newOrder(t)
	require.NoError(t, o.SetStatus(order.Shipped, day0))
	require.NoError(t, o.SetStatus(order.Delivered, day0))
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with computed total", func(t *testing.T) {
		o := newOrder(t, newItem(t, 2, "19.99"), newItem(t, 1, "5.02"))

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.ReturnStatusNone, o.ReturnStatus())
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
		assert.True(t, decimal.RequireFromString("45.00").Equal(o.TotalAmount()))
		assert.Equal(t, order.DefaultEstimatedDeliveryDays, o.EstimatedDeliveryDays())
		assert.Equal(t, day0, o.CreatedAt())
		assert.Nil(t, o.DeliveredAt())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should join every validation error", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, nil, kernel.Address{}, order.PaymentUnknown, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, order.ErrOrderHasNoItems)
		assert.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
		assert.Contains(t, err.Error(), "customerId")
		assert.Contains(t, err.Error(), "payment status is invalid")
		assert.Contains(t, err.Error(), "createdAt")
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)

	var zero order.Order
	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_ContainsProduct(t *testing.T) {
	item := newItem(t, 1, "1.00")
	o := newOrder(t, item)

	assert.True(t, o.ContainsProduct(item.ProductID()))
	assert.False(t, o.ContainsProduct(kernel.NewUUID()))
}

func TestOrder_SetStatus(t *testing.T) {
	t.Run("should stamp deliveredAt once", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.SetStatus(order.Shipped, day0))
		require.NoError(t, o.SetStatus(order.Delivered, day0))

		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, day0, *o.DeliveredAt())

		require.NoError(t, o.RequestReturn("broken", day0.Add(time.Hour), alwaysEligible))
		require.NoError(t, o.UpdateReturnStatus(order.ReturnStatusRejected))

		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, day0, *o.DeliveredAt())
	})

	t.Run("should fail closed on disallowed edge", func(t *testing.T) {
		o := newOrder(t)

		err := o.SetStatus(order.Delivered, day0)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("should cancel pending order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel(day0))
		assert.Equal(t, order.Cancelled, o.Status())
		require.ErrorIs(t, o.SetStatus(order.Processing, day0), errs.ErrInvalidStateTransition)
	})

	t.Run("should not leave an open return", func(t *testing.T) {
		o := deliveredOrder(t)
		require.NoError(t, o.RequestReturn("broken", day0.Add(time.Hour), alwaysEligible))

		err := o.SetStatus(order.Delivered, day0.AddDate(0, 0, 1))

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		require.ErrorIs(t, err, order.ErrStatusOwnedByReturn)
		assert.Equal(t, order.ReturnRequested, o.Status())
		assert.Equal(t, order.ReturnStatusRequested, o.ReturnStatus())

		require.NoError(t, o.UpdateReturnStatus(order.ReturnStatusRefunded))
		assert.Equal(t, order.Returned, o.Status())
	})

	t.Run("should not enter return statuses", func(t *testing.T) {
		for _, target := range []order.Status{order.ReturnRequested, order.Returned} {
			o := deliveredOrder(t)

			err := o.SetStatus(target, day0)

			require.ErrorIs(t, err, order.ErrStatusOwnedByReturn, target.String())
			assert.Equal(t, order.Delivered, o.Status())
		}
	})

	t.Run("should not leave a settled return", func(t *testing.T) {
		o := deliveredOrder(t)
		require.NoError(t, o.RequestReturn("broken", day0.Add(time.Hour), alwaysEligible))
		require.NoError(t, o.UpdateReturnStatus(order.ReturnStatusRefunded))

		require.ErrorIs(t, o.SetStatus(order.Delivered, day0), order.ErrStatusOwnedByReturn)
		assert.Equal(t, order.Returned, o.Status())
	})
}

func TestOrder_ApplyDelivered_LeavesReturnFlowAlone(t *testing.T) {
	o := deliveredOrder(t)
	deliveredAt := *o.DeliveredAt()
	require.NoError(t, o.RequestReturn("broken", day0.Add(time.Hour), alwaysEligible))

	require.NoError(t, o.ApplyDelivered(day0.AddDate(0, 0, 2)))

	assert.Equal(t, order.ReturnRequested, o.Status())
	assert.Equal(t, order.ReturnStatusRequested, o.ReturnStatus())
	assert.Equal(t, deliveredAt, *o.DeliveredAt())

	require.NoError(t, o.UpdateReturnStatus(order.ReturnStatusRefunded))
	require.NoError(t, o.ApplyDelivered(day0.AddDate(0, 0, 3)))
	assert.Equal(t, order.Returned, o.Status())
}

func TestOrder_RequestReturn(t *testing.T) {
	t.Run("should open return when eligible", func(t *testing.T) {
		o := deliveredOrder(t)
		now := day0.AddDate(0, 0, 3)

		require.NoError(t, o.RequestReturn(" too small ", now, alwaysEligible))

		assert.Equal(t, order.ReturnRequested, o.Status())
		assert.Equal(t, order.ReturnStatusRequested, o.ReturnStatus())
		assert.Equal(t, "too small", o.ReturnReason())
		assert.Equal(t, now, *o.ReturnRequestedAt())
	})

	t.Run("should surface eligibility violation unchanged", func(t *testing.T) {
		o := deliveredOrder(t)
		violation := errs.NewPolicyViolationError("return", "WINDOW_EXPIRED")

		err := o.RequestReturn("late", day0, eligibilityFunc(func(*order.Order, time.Time) error { return violation }))

		require.ErrorIs(t, err, errs.ErrPolicyViolation)
		reason, ok := errs.ReasonOf(err)
		require.True(t, ok)
		assert.Equal(t, "WINDOW_EXPIRED", reason)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, order.ReturnStatusNone, o.ReturnStatus())
	})

	t.Run("should require a reason", func(t *testing.T) {
		o := deliveredOrder(t)
		err := o.RequestReturn("  ", day0, alwaysEligible)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_UpdateReturnStatus(t *testing.T) {
	openReturn := func(t *testing.T) *order.Order {
		t.Helper()
		o := deliveredOrder(t)
		require.NoError(t, o.RequestReturn("broken", day0, alwaysEligible))
		return o
	}

	t.Run("should fail without a return in progress", func(t *testing.T) {
		o := deliveredOrder(t)

		err := o.UpdateReturnStatus(order.ReturnStatusApproved)

		require.ErrorIs(t, err, order.ErrNoReturnInProgress)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("should only record intermediate steps", func(t *testing.T) {
		o := openReturn(t)

		require.NoError(t, o.UpdateReturnStatus(order.ReturnStatusApproved))
		require.NoError(t, o.UpdateReturnStatus(order.ReturnStatusInTransit))

		assert.Equal(t, order.ReturnStatusInTransit, o.ReturnStatus())
		assert.Equal(t, order.ReturnRequested, o.Status())
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
	})

	t.Run("should settle refunded return", func(t *testing.T) {
		o := openReturn(t)

		require.NoError(t, o.UpdateReturnStatus(order.ReturnStatusRefunded))

		assert.Equal(t, order.Returned, o.Status())
		assert.Equal(t, order.PaymentRefunded, o.PaymentStatus())
		assert.Equal(t, order.ReturnStatusRefunded, o.ReturnStatus())
	})

	t.Run("should revert rejected return to delivered", func(t *testing.T) {
		o := openReturn(t)

		require.NoError(t, o.UpdateReturnStatus(order.ReturnStatusRejected))

		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, order.ReturnStatusRejected, o.ReturnStatus())
	})

	t.Run("should refuse changes after settlement", func(t *testing.T) {
		o := openReturn(t)
		require.NoError(t, o.UpdateReturnStatus(order.ReturnStatusRefunded))

		err := o.UpdateReturnStatus(order.ReturnStatusRejected)

		require.ErrorIs(t, err, order.ErrReturnAlreadySettled)
		assert.Equal(t, order.Returned, o.Status())
	})

	t.Run("should refuse moving back to None", func(t *testing.T) {
		o := openReturn(t)
		err := o.UpdateReturnStatus(order.ReturnStatusNone)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestOrder_ShipmentFacts(t *testing.T) {
	t.Run("should mirror label, shipment and delivery", func(t *testing.T) {
		o := newOrder(t)
		estimate := day0.AddDate(0, 0, 1)

		require.NoError(t, o.ApplyLabelGenerated("EX0123456789", "express", &estimate))
		assert.Equal(t, "EX0123456789", o.TrackingNumber())
		assert.Equal(t, "express", o.CarrierName())
		assert.Equal(t, estimate, *o.EstimatedDeliveryDate())
		assert.Equal(t, order.Pending, o.Status())

		shippedAt := day0.Add(2 * time.Hour)
		require.NoError(t, o.ApplyShipped("EX0123456789", shippedAt))
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, shippedAt, *o.ShippedAt())
		assert.Equal(t, estimate, *o.EstimatedDeliveryDate())

		deliveredAt := day0.AddDate(0, 0, 1)
		require.NoError(t, o.ApplyDelivered(deliveredAt))
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())

		require.NoError(t, o.ApplyDelivered(deliveredAt.Add(time.Hour)))
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
	})

	t.Run("should default estimate from estimatedDeliveryDays", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ApplyShipped("PS123456789PL", day0))

		assert.Equal(t, day0.AddDate(0, 0, order.DefaultEstimatedDeliveryDays), *o.EstimatedDeliveryDate())
	})

	t.Run("should clear label facts on cancellation", func(t *testing.T) {
		o := newOrder(t)
		estimate := day0.AddDate(0, 0, 3)
		require.NoError(t, o.ApplyLabelGenerated("PS123456789PL", "postal", &estimate))

		require.NoError(t, o.ApplyLabelCancelled())

		assert.Empty(t, o.TrackingNumber())
		assert.Empty(t, o.CarrierName())
		assert.Nil(t, o.EstimatedDeliveryDate())
	})

	t.Run("should reject label facts after shipping", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ApplyShipped("PS123456789PL", day0))

		err := o.ApplyLabelGenerated("PS999999999PL", "postal", nil)

		require.True(t, errors.Is(err, errs.ErrInvalidStateTransition))
		assert.Equal(t, "PS123456789PL", o.TrackingNumber())
	})

	t.Run("should reject shipping a cancelled order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel(day0))
		require.ErrorIs(t, o.ApplyShipped("PS123456789PL", day0), errs.ErrInvalidStateTransition)
	})
}

func TestRestoreOrder(t *testing.T) {
	delivered := day0.AddDate(0, 0, 2)

	o, err := order.RestoreOrder(order.RestoreParams{
		ID:              kernel.NewUUID(),
		CustomerID:      kernel.NewUUID(),
		Items:           []order.LineItem{newItem(t, 3, "2.50")},
		Status:          order.Delivered,
		PaymentStatus:   order.PaymentCompleted,
		ShippingAddress: newAddress(t),
		CreatedAt:       day0,
		DeliveredAt:     &delivered,
		ReturnStatus:    order.ReturnStatusNone,
		TrackingNumber:  "PS123456789PL",
		CarrierName:     "postal",
		Version:         4,
	})

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, 4, o.Version())
	assert.Equal(t, order.DefaultEstimatedDeliveryDays, o.EstimatedDeliveryDays())
	assert.True(t, decimal.RequireFromString("7.50").Equal(o.TotalAmount()))

	_, err = order.RestoreOrder(order.RestoreParams{})
	require.Error(t, err)
}

func TestNewLineItem(t *testing.T) {
	_, err := order.NewLineItem(kernel.NewUUID(), " ", 0, decimal.NewFromInt(-1))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "quantity is invalid")
	assert.Contains(t, err.Error(), "unit price is invalid")

	item := newItem(t, 3, "1.10")
	assert.True(t, decimal.RequireFromString("3.30").Equal(item.Subtotal()))
}
