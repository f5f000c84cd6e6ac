package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// LabelRenderer turns label data into a printable document.
type LabelRenderer interface {
	// Render returns the document bytes and their MIME type.
	Render(ctx context.Context, label shipment.Label) ([]byte, string, error)
}
