package queries

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// GetLabelPdfQueryHandler renders the label of a labelled package with the warehouse as
// the sender.
//
// Example:
//
//	handler := NewGetLabelPdfQueryHandler(packageRepo, label.NewPDFRenderer(), warehouse)
//	doc, err := handler.Handle(ctx, query)
//	if errors.Is(err, shipment.ErrMissingTrackingNumber) {
//	    // no label generated yet
//	}
type GetLabelPdfQueryHandler struct {
	packages  ports.PackageRepository
	renderer  ports.LabelRenderer
	warehouse kernel.Address
}

func NewGetLabelPdfQueryHandler(
	packages ports.PackageRepository,
	renderer ports.LabelRenderer,
	warehouse kernel.Address,
) GetLabelPdfQueryHandler {
	return GetLabelPdfQueryHandler{
		packages:  packages,
		renderer:  renderer,
		warehouse: warehouse,
	}
}

// Handle fails with shipment.ErrMissingTrackingNumber when no label was generated.
func (h GetLabelPdfQueryHandler) Handle(ctx context.Context, query GetLabelPdfQuery) (LabelDocument, error) {
	if err := query.Validate(); err != nil {
		return LabelDocument{}, err
	}

	p, err := h.packages.Get(ctx, query.PackageID())
	if err != nil {
		return LabelDocument{}, err
	}

	label, err := p.Label(h.warehouse)
	if err != nil {
		return LabelDocument{}, err
	}

	content, contentType, err := h.renderer.Render(ctx, label)
	if err != nil {
		return LabelDocument{}, fmt.Errorf("render label %s: %w", label.TrackingNumber, err)
	}

	return LabelDocument{
		Filename:    fmt.Sprintf("label-%s.pdf", label.TrackingNumber),
		ContentType: contentType,
		Content:     content,
	}, nil
}
