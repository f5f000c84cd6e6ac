package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnPolicy_ReturnDeadline(t *testing.T) {
	policy := services.NewReturnPolicy()

	_, ok := policy.ReturnDeadline(pendingOrder(t))
	assert.False(t, ok)

	deadline, ok := policy.ReturnDeadline(deliveredOn(t, day0))
	require.True(t, ok)
	assert.Equal(t, dayN(14), deadline)
}

func TestReturnPolicy_WindowBoundaries(t *testing.T) {
	policy := services.NewReturnPolicy()
	o := deliveredOn(t, day0)

	tests := []struct {
		name   string
		now    time.Time
		reason string
	}{
		{"on delivery day", day0, ""},
		{"one second before deadline", dayN(14).Add(-time.Second), ""},
		{"exactly at deadline", dayN(14), ""},
		{"one second after deadline", dayN(14).Add(time.Second), services.ReasonWindowExpired},
		{"day 15", dayN(15), services.ReasonWindowExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, ineligible := policy.ExplainIneligibility(o, tt.now)

			assert.Equal(t, tt.reason, reason)
			assert.Equal(t, tt.reason != "", ineligible)
			assert.Equal(t, tt.reason == "", policy.CanReturn(o, tt.now))
		})
	}
}

func TestReturnPolicy_ReasonPriority(t *testing.T) {
	policy := services.NewReturnPolicy()

	t.Run("should report NotYetDelivered for shipped order", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.ApplyShipped("PS123456789PL", day0))

		reason, _ := policy.ExplainIneligibility(o, dayN(1))
		assert.Equal(t, services.ReasonNotYetDelivered, reason)
	})

	t.Run("should report MissingDeliveryDate for restored delivered order without date", func(t *testing.T) {
		src := pendingOrder(t)
		o, err := order.RestoreOrder(order.RestoreParams{
			ID:              src.ID(),
			CustomerID:      src.CustomerID(),
			Items:           src.Items(),
			Status:          order.Delivered,
			PaymentStatus:   order.PaymentCompleted,
			ShippingAddress: src.ShippingAddress(),
			CreatedAt:       day0,
			ReturnStatus:    order.ReturnStatusNone,
		})
		require.NoError(t, err)

		reason, _ := policy.ExplainIneligibility(o, dayN(1))
		assert.Equal(t, services.ReasonMissingDeliveryDate, reason)
	})

	t.Run("should report AlreadyRequested before anything else", func(t *testing.T) {
		o := deliveredOn(t, day0)
		require.NoError(t, o.RequestReturn("broken", dayN(1), policy))

		reason, _ := policy.ExplainIneligibility(o, dayN(30))
		assert.Equal(t, services.ReasonAlreadyRequested, reason)
	})
}

func TestReturnPolicy_RequestReturnScenario(t *testing.T) {
	policy := services.NewReturnPolicy()

	t.Run("request on day 14 succeeds", func(t *testing.T) {
		o := deliveredOn(t, day0)
		require.NoError(t, o.RequestReturn("wrong size", dayN(14), policy))
		assert.Equal(t, order.ReturnRequested, o.Status())
	})

	t.Run("request on day 15 fails with WindowExpired", func(t *testing.T) {
		o := deliveredOn(t, day0)

		err := o.RequestReturn("wrong size", dayN(15), policy)

		require.ErrorIs(t, err, errs.ErrPolicyViolation)
		reason, ok := errs.ReasonOf(err)
		require.True(t, ok)
		assert.Equal(t, services.ReasonWindowExpired, reason)
	})

	t.Run("second request fails with AlreadyRequested", func(t *testing.T) {
		o := deliveredOn(t, day0)
		require.NoError(t, o.RequestReturn("wrong size", dayN(1), policy))

		err := o.RequestReturn("wrong size", dayN(2), policy)

		reason, ok := errs.ReasonOf(err)
		require.True(t, ok)
		assert.Equal(t, services.ReasonAlreadyRequested, reason)
	})

	t.Run("rejected return cannot be reopened", func(t *testing.T) {
		o := deliveredOn(t, day0)
		require.NoError(t, o.RequestReturn("wrong size", dayN(1), policy))
		require.NoError(t, o.UpdateReturnStatus(order.ReturnStatusRejected))

		assert.False(t, policy.CanReturn(o, dayN(2)))
	})

	t.Run("pending order is not eligible", func(t *testing.T) {
		o := newOrderWithProduct(t, kernel.NewUUID(), day0)
		require.ErrorIs(t, policy.CheckReturn(o, day0), errs.ErrPolicyViolation)
	})
}
