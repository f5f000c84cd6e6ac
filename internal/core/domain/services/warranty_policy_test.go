package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warranty"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarrantyPolicy_ExpirationDate(t *testing.T) {
	policy := services.NewWarrantyPolicy()
	purchase := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC), policy.ExpirationDate(purchase, 24))
	assert.Equal(t, time.Date(2024, 9, 15, 10, 0, 0, 0, time.UTC), policy.ExpirationDate(purchase, 6))
	assert.Equal(t, purchase, policy.ExpirationDate(purchase, 0))
}

func TestWarrantyPolicy_CheckFile(t *testing.T) {
	policy := services.NewWarrantyPolicy()
	productID := kernel.NewUUID()
	product, err := catalog.NewProduct(productID, "Blender", 12)
	require.NoError(t, err)
	o := newOrderWithProduct(t, productID, day0)
	expiration := policy.ExpirationDate(day0, 12)

	reasonOf := func(err error) string {
		reason, _ := errs.ReasonOf(err)
		return reason
	}

	t.Run("should allow filing one day before expiration", func(t *testing.T) {
		require.NoError(t, policy.CheckFile(o, product, nil, expiration.AddDate(0, 0, -1)))
		assert.True(t, policy.CanFile(o, product, nil, expiration))
	})

	t.Run("should reject one day past expiration", func(t *testing.T) {
		err := policy.CheckFile(o, product, nil, expiration.AddDate(0, 0, 1))

		require.ErrorIs(t, err, errs.ErrPolicyViolation)
		assert.Equal(t, services.ReasonWarrantyExpired, reasonOf(err))
	})

	t.Run("should reject product outside the order", func(t *testing.T) {
		other, _ := catalog.NewProduct(kernel.NewUUID(), "Toaster", 12)

		err := policy.CheckFile(o, other, nil, day0)

		assert.Equal(t, services.ReasonProductNotInOrder, reasonOf(err))
	})

	t.Run("should reject product without warranty", func(t *testing.T) {
		noWarranty, _ := catalog.NewProduct(productID, "Blender", 0)

		err := policy.CheckFile(o, noWarranty, nil, day0)

		assert.Equal(t, services.ReasonNoWarrantyCoverage, reasonOf(err))
	})

	t.Run("should reject a second claim for the pair", func(t *testing.T) {
		existing, err := warranty.NewClaim(kernel.NewUUID(), o.ID(), productID, o.CustomerID(),
			day0, expiration, "motor stopped", nil, dayN(10))
		require.NoError(t, err)

		err = policy.CheckFile(o, product, existing, dayN(20))

		assert.Equal(t, services.ReasonClaimAlreadyExists, reasonOf(err))
	})
}

func TestWarrantyPolicy_IsUnderWarranty(t *testing.T) {
	policy := services.NewWarrantyPolicy()
	expiration := dayN(365)
	claim, err := warranty.NewClaim(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		day0, expiration, "cracked lid", nil, dayN(5))
	require.NoError(t, err)

	assert.True(t, policy.IsUnderWarranty(claim, expiration))
	assert.True(t, policy.IsUnderWarranty(claim, expiration.Add(-time.Second)))
	assert.False(t, policy.IsUnderWarranty(claim, expiration.Add(time.Second)))
}
