// Package label renders shipping labels as PDF documents.
package label

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"

	"github.com/go-pdf/fpdf"
)

// ContentType is the MIME type of rendered labels.
const ContentType = "application/pdf"

var _ ports.LabelRenderer = (*PDFRenderer)(nil)

// PDFRenderer lays a label out on an A6 page, the common thermal label size.
type PDFRenderer struct {
	// Issuer is printed in the footer.
	Issuer string
}

// NewPDFRenderer creates a renderer.
func NewPDFRenderer(issuer string) *PDFRenderer {
	return &PDFRenderer{Issuer: issuer}
}

// Render returns the PDF bytes for label.
func (r *PDFRenderer) Render(ctx context.Context, label shipment.Label) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(label.TrackingNumber) == "" {
		return nil, "", shipment.ErrMissingTrackingNumber
	}

	pdf := fpdf.New("P", "mm", "A6", "")
	pdf.SetTitle("Shipping label "+label.TrackingNumber, true)
	pdf.SetMargins(6, 6, 6)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	width := pageW - left - right

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(width, 8, strings.ToUpper(label.Carrier.String()), "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	addressBlock(pdf, tr, width, "FROM", label.From, 8)
	pdf.Ln(2)
	addressBlock(pdf, tr, width, "SHIP TO", label.To, 11)

	if label.PickupPointID != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(width, 6, tr("Pickup point: "+label.PickupPointID), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(width, 5, tr("Parcel: "+label.Dimensions.String()), "T", 1, "L", false, 0, "")
	pdf.CellFormat(width, 5, tr("Ref: "+label.Reference), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Courier", "B", 16)
	pdf.CellFormat(width, 12, label.TrackingNumber, "1", 1, "C", false, 0, "")

	if r.Issuer != "" {
		pdf.SetFont("Helvetica", "I", 6)
		pdf.CellFormat(width, 5, tr(r.Issuer), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render label %s: %w", label.TrackingNumber, err)
	}
	return buf.Bytes(), ContentType, nil
}

func addressBlock(pdf *fpdf.Fpdf, tr func(string) string, width float64, title string, a kernel.Address, size float64) {
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(width, 4, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", size)
	for _, line := range a.Lines() {
		pdf.CellFormat(width, size*0.5, tr(line), "", 1, "L", false, 0, "")
	}
}
