// Package warranty implements the WarrantyClaim aggregate filed by a customer for one
// product of one order, and its admin review workflow.
package warranty

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrClaimIsNotConstructed is returned when a Claim was not created through NewClaim or RestoreClaim.
var ErrClaimIsNotConstructed = errors.New("Claim must be created via NewClaim constructor")

// Claim is a customer's warranty claim. The (orderID, productID) pair is unique.
type Claim struct {
	id                     kernel.UUID
	orderID                kernel.UUID
	productID              kernel.UUID
	customerID             kernel.UUID
	purchaseDate           time.Time
	warrantyExpirationDate time.Time
	issueDescription       string
	photos                 []string
	status                 Status
	resolution             string
	adminNotes             string
	resolvedAt             *time.Time
	createdAt              time.Time
	version                int
	isConstructed          bool
}

// NewClaim creates a Submitted claim. Eligibility must have been checked by the warranty
// policy beforehand; the expiration date is the one it computed.
func NewClaim(
	id, orderID, productID, customerID kernel.UUID,
	purchaseDate, expirationDate time.Time,
	issueDescription string,
	photos []string,
	now time.Time,
) (*Claim, error) {
	c := &Claim{
		purchaseDate:           purchaseDate,
		warrantyExpirationDate: expirationDate,
		status:                 Submitted,
		createdAt:              now,
		isConstructed:          true,
	}

	var descErr, datesErr error
	c.issueDescription = strings.TrimSpace(issueDescription)
	if c.issueDescription == "" {
		descErr = errs.NewValueIsRequiredError("issueDescription")
	}
	if expirationDate.Before(purchaseDate) {
		datesErr = errs.NewValueIsOutOfRangeError("warrantyExpirationDate", expirationDate, purchaseDate, "unbounded")
	}

	if err := errors.Join(
		c.setIDs(id, orderID, productID, customerID),
		descErr,
		datesErr,
	); err != nil {
		return nil, err
	}
	c.photos = cleanPhotos(photos)

	return c, nil
}

// RestoreParams carries the persisted state of a claim.
type RestoreParams struct {
	ID                     kernel.UUID
	OrderID                kernel.UUID
	ProductID              kernel.UUID
	CustomerID             kernel.UUID
	PurchaseDate           time.Time
	WarrantyExpirationDate time.Time
	IssueDescription       string
	Photos                 []string
	Status                 Status
	Resolution             string
	AdminNotes             string
	ResolvedAt             *time.Time
	CreatedAt              time.Time
	Version                int
}

// RestoreClaim rebuilds a claim from storage.
func RestoreClaim(p RestoreParams) (*Claim, error) {
	c := &Claim{
		purchaseDate:           p.PurchaseDate,
		warrantyExpirationDate: p.WarrantyExpirationDate,
		issueDescription:       p.IssueDescription,
		photos:                 cleanPhotos(p.Photos),
		resolution:             p.Resolution,
		adminNotes:             p.AdminNotes,
		resolvedAt:             p.ResolvedAt,
		createdAt:              p.CreatedAt,
		version:                p.Version,
		isConstructed:          true,
	}
	if err := errors.Join(c.setIDs(p.ID, p.OrderID, p.ProductID, p.CustomerID), p.Status.Validate()); err != nil {
		return nil, err
	}
	c.status = p.Status
	return c, nil
}

// Validate ensures the Claim instance was properly constructed.
func (c *Claim) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClaimIsNotConstructed
	}
	return nil
}

func (c *Claim) ID() kernel.UUID                   { return c.id }
func (c *Claim) OrderID() kernel.UUID              { return c.orderID }
func (c *Claim) ProductID() kernel.UUID            { return c.productID }
func (c *Claim) CustomerID() kernel.UUID           { return c.customerID }
func (c *Claim) PurchaseDate() time.Time           { return c.purchaseDate }
func (c *Claim) WarrantyExpirationDate() time.Time { return c.warrantyExpirationDate }
func (c *Claim) IssueDescription() string          { return c.issueDescription }
func (c *Claim) Status() Status                    { return c.status }
func (c *Claim) Resolution() string                { return c.resolution }
func (c *Claim) AdminNotes() string                { return c.adminNotes }
func (c *Claim) ResolvedAt() *time.Time            { return c.resolvedAt }
func (c *Claim) CreatedAt() time.Time              { return c.createdAt }
func (c *Claim) Version() int                      { return c.version }

// Photos returns a copy of the attached photo references.
func (c *Claim) Photos() []string {
	photos := make([]string, len(c.photos))
	copy(photos, c.photos)
	return photos
}

// Review moves the claim along the review workflow. Resolution and notes replace the
// previous values when non-empty. Rejected and Resolved stamp resolvedAt.
func (c *Claim) Review(target Status, resolution, adminNotes string, now time.Time) error {
	next, err := c.status.TransitionTo(target)
	if err != nil {
		return err
	}
	if next.IsClosed() && strings.TrimSpace(resolution) == "" && c.resolution == "" {
		return errs.NewValueIsRequiredError("resolution")
	}

	c.status = next
	if r := strings.TrimSpace(resolution); r != "" {
		c.resolution = r
	}
	if n := strings.TrimSpace(adminNotes); n != "" {
		c.adminNotes = n
	}
	if next.IsClosed() {
		c.resolvedAt = &now
	}
	return nil
}

func (c *Claim) setIDs(id, orderID, productID, customerID kernel.UUID) error {
	if err := errors.Join(
		requireID("id", id),
		requireID("orderId", orderID),
		requireID("productId", productID),
		requireID("customerId", customerID),
	); err != nil {
		return err
	}

	c.id, c.orderID, c.productID, c.customerID = id, orderID, productID, customerID
	return nil
}

func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func cleanPhotos(photos []string) []string {
	out := make([]string, 0, len(photos))
	for _, p := range photos {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
