package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDimensions(t *testing.T) {
	t.Run("should accept values within carrier limits", func(t *testing.T) {
		d, err := kernel.NewDimensions(1.2, 30, 20, 10)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.InDelta(t, 1.2, d.WeightKg(), 1e-9)
		assert.Equal(t, "1.20kg 30x20x10cm", d.String())
	})

	t.Run("should accept exact maxima", func(t *testing.T) {
		_, err := kernel.NewDimensions(kernel.MaxWeightKg, kernel.MaxSideCm, 1, 1)
		require.NoError(t, err)
	})

	tests := []struct {
		name  string
		w     float64
		l     float64
		field string
	}{
		{"zero weight", 0, 10, "weightKg"},
		{"negative weight", -1, 10, "weightKg"},
		{"too heavy", kernel.MaxWeightKg + 0.1, 10, "weightKg"},
		{"too long", 1, kernel.MaxSideCm + 1, "lengthCm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kernel.NewDimensions(tt.w, tt.l, 10, 10)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), tt.field)
		})
	}

	t.Run("should fail zero value validation", func(t *testing.T) {
		var d kernel.Dimensions
		require.ErrorIs(t, d.Validate(), kernel.ErrDimensionsIsNotConstructed)
	})
}
