package carriers_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type movableClock struct {
	now time.Time
}

func (c *movableClock) Now() time.Time { return c.now }

func labelRequest(t *testing.T, carrierType carrier.Type, weightKg float64) carrier.LabelRequest {
	t.Helper()

	from, err := kernel.NewAddress("Warehouse", "Industrial 4", "Poznan", "60-001", "PL", "+48 61 000 00 00")
	require.NoError(t, err)
	to, err := kernel.NewAddress("Jan Kowalski", "Lipowa 12", "Krakow", "30-001", "PL", "+48 600 100 200")
	require.NoError(t, err)
	dims, err := kernel.NewDimensions(weightKg, 30, 20, 10)
	require.NoError(t, err)

	return carrier.LabelRequest{
		Carrier:    carrierType,
		From:       from,
		To:         to,
		Dimensions: dims,
		Reference:  "4c1f4a62-7c55-4b43-9d0f-6a0c1f5f7e11",
	}
}
