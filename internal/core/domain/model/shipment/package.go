package shipment

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPackageIsNotConstructed is returned when a Package was not created through NewPackage or RestorePackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

	// ErrPackageAlreadyExists is the cause reported when an order already has a package.
	ErrPackageAlreadyExists = errors.New("package already exists for order")

	// ErrLabelAlreadyGenerated is the cause of generating a label for a ReadyToShip package.
	ErrLabelAlreadyGenerated = errors.New("label already generated")

	// ErrNotReadyToShip is the cause of shipping a package that has no label yet.
	ErrNotReadyToShip = errors.New("package is not ready to ship")

	// ErrMissingTrackingNumber is returned by operations that need a carrier tracking number.
	ErrMissingTrackingNumber = errs.NewValueIsRequiredError("trackingNumber")
)

// Package is the aggregate root for the parcel of one order.
//
// Package follows these invariants:
//   - Exactly one package per order; the repository enforces the uniqueness
//   - trackingNumber and labelURL are set together, never one without the other
//   - Label facts are written only after the carrier answered successfully
type Package struct {
	id              kernel.UUID
	orderID         kernel.UUID
	dimensions      kernel.Dimensions
	status          Status
	carrier         carrier.Type
	trackingNumber  string
	labelURL        string
	labelCost       decimal.Decimal
	labelSimulated  bool
	preparedBy      *kernel.UUID
	preparedAt      *time.Time
	shippedAt       *time.Time
	deliveredAt     *time.Time
	shippingAddress kernel.Address
	pickupPointID   string

	notificationSent   bool
	notificationSentAt *time.Time

	notes   string
	version int

	events        []Event
	isConstructed bool
}

// NewPackage opens fulfillment for an order. The package starts Pending with a copy of
// the order's shipping address.
//
// Example:
//
//	dims, _ := kernel.NewDimensions(1.2, 30, 20, 10)
//	pkg, err := shipment.NewPackage(kernel.NewUUID(), o.ID(), dims, carrier.Express,
//	    o.ShippingAddress(), "")
func NewPackage(
	id kernel.UUID,
	orderID kernel.UUID,
	dimensions kernel.Dimensions,
	carrierType carrier.Type,
	shippingAddress kernel.Address,
	pickupPointID string,
) (*Package, error) {
	p := &Package{
		status:        Pending,
		labelCost:     decimal.Zero,
		pickupPointID: strings.TrimSpace(pickupPointID),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setDimensions(dimensions),
		p.setCarrier(carrierType),
		p.setShippingAddress(shippingAddress),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParams carries the persisted state of a package.
type RestoreParams struct {
	ID                 kernel.UUID
	OrderID            kernel.UUID
	Dimensions         kernel.Dimensions
	Status             Status
	Carrier            carrier.Type
	TrackingNumber     string
	LabelURL           string
	LabelCost          decimal.Decimal
	LabelSimulated     bool
	PreparedBy         *kernel.UUID
	PreparedAt         *time.Time
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	ShippingAddress    kernel.Address
	PickupPointID      string
	NotificationSent   bool
	NotificationSentAt *time.Time
	Notes              string
	Version            int
}

// RestorePackage rebuilds a package from storage without recording events.
func RestorePackage(p RestoreParams) (*Package, error) {
	pkg := &Package{
		trackingNumber:     p.TrackingNumber,
		labelURL:           p.LabelURL,
		labelCost:          p.LabelCost,
		labelSimulated:     p.LabelSimulated,
		preparedBy:         p.PreparedBy,
		preparedAt:         p.PreparedAt,
		shippedAt:          p.ShippedAt,
		deliveredAt:        p.DeliveredAt,
		pickupPointID:      p.PickupPointID,
		notificationSent:   p.NotificationSent,
		notificationSentAt: p.NotificationSentAt,
		notes:              p.Notes,
		version:            p.Version,
		isConstructed:      true,
	}

	if err := errors.Join(
		pkg.setID(p.ID),
		pkg.setOrderID(p.OrderID),
		pkg.setDimensions(p.Dimensions),
		pkg.setCarrier(p.Carrier),
		pkg.setShippingAddress(p.ShippingAddress),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}
	pkg.status = p.Status

	return pkg, nil
}

// Validate ensures the Package instance was properly constructed.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

func (p *Package) ID() kernel.UUID                 { return p.id }
func (p *Package) OrderID() kernel.UUID            { return p.orderID }
func (p *Package) Dimensions() kernel.Dimensions   { return p.dimensions }
func (p *Package) Status() Status                  { return p.status }
func (p *Package) Carrier() carrier.Type           { return p.carrier }
func (p *Package) TrackingNumber() string          { return p.trackingNumber }
func (p *Package) LabelURL() string                { return p.labelURL }
func (p *Package) LabelCost() decimal.Decimal      { return p.labelCost }
func (p *Package) LabelSimulated() bool            { return p.labelSimulated }
func (p *Package) PreparedBy() *kernel.UUID        { return p.preparedBy }
func (p *Package) PreparedAt() *time.Time          { return p.preparedAt }
func (p *Package) ShippedAt() *time.Time           { return p.shippedAt }
func (p *Package) DeliveredAt() *time.Time         { return p.deliveredAt }
func (p *Package) ShippingAddress() kernel.Address { return p.shippingAddress }
func (p *Package) PickupPointID() string           { return p.pickupPointID }
func (p *Package) NotificationSent() bool          { return p.notificationSent }
func (p *Package) NotificationSentAt() *time.Time  { return p.notificationSentAt }
func (p *Package) Notes() string                   { return p.notes }
func (p *Package) Version() int                    { return p.version }

// MarkPreparing records that an admin started packing.
func (p *Package) MarkPreparing(adminID kernel.UUID, now time.Time) error {
	if err := adminID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("adminId", err)
	}
	if p.status != Pending && p.status != Preparing {
		return errs.NewInvalidStateTransitionError("package", p.status.String(), Preparing.String())
	}

	p.status = Preparing
	p.preparedBy = &adminID
	p.preparedAt = &now
	return nil
}

// CanGenerateLabel fails with ErrLabelAlreadyGenerated for a ReadyToShip package and with
// a plain invalid transition once the carrier has it.
func (p *Package) CanGenerateLabel() error {
	switch {
	case p.status == ReadyToShip:
		return errs.NewInvalidStateTransitionErrorWithCause(
			"package", p.status.String(), ReadyToShip.String(), ErrLabelAlreadyGenerated)
	case p.status.HasLeftWarehouse():
		return errs.NewInvalidStateTransitionError("package", p.status.String(), ReadyToShip.String())
	}
	return nil
}

// LabelRequest builds the carrier request for this package.
func (p *Package) LabelRequest(from kernel.Address) carrier.LabelRequest {
	return carrier.LabelRequest{
		Carrier:       p.carrier,
		From:          from,
		To:            p.shippingAddress,
		Dimensions:    p.dimensions,
		PickupPointID: p.pickupPointID,
		Reference:     p.orderID.String(),
	}
}

// ApplyLabel stores a carrier-issued label and moves the package to ReadyToShip.
// Partial responses are rejected so the package never holds a tracking number
// without its label.
func (p *Package) ApplyLabel(resp carrier.LabelResponse, now time.Time) error {
	if err := p.CanGenerateLabel(); err != nil {
		return err
	}
	if err := resp.Validate(); err != nil {
		return err
	}

	p.trackingNumber = resp.TrackingNumber
	p.labelURL = resp.LabelURL
	p.labelCost = resp.Cost
	p.labelSimulated = resp.Simulated
	p.status = ReadyToShip
	p.preparedAt = &now

	p.record(PackageReadyToShip{
		PackageID:             p.id,
		Order:                 p.orderID,
		TrackingNumber:        resp.TrackingNumber,
		Carrier:               p.carrier,
		EstimatedDeliveryDate: resp.EstimatedDeliveryDate,
		OccurredAt:            now,
	})
	return nil
}

// CancelLabel drops the issued label after the carrier confirmed the cancellation.
// The package goes back to Preparing so a new label can be generated.
func (p *Package) CancelLabel(now time.Time) error {
	if p.status != ReadyToShip {
		return errs.NewInvalidStateTransitionError("package", p.status.String(), Preparing.String())
	}

	cancelled := p.trackingNumber
	p.status = Preparing
	p.trackingNumber = ""
	p.labelURL = ""
	p.labelCost = decimal.Zero
	p.labelSimulated = false

	p.record(LabelCancelled{
		PackageID:      p.id,
		Order:          p.orderID,
		TrackingNumber: cancelled,
		OccurredAt:     now,
	})
	return nil
}

// MarkShipped hands the package to the carrier. A missing tracking number is reported
// before the status check so that shipping an unlabelled package says what is missing.
func (p *Package) MarkShipped(now time.Time) error {
	if p.trackingNumber == "" {
		return ErrMissingTrackingNumber
	}
	if p.status != ReadyToShip {
		return errs.NewInvalidStateTransitionErrorWithCause(
			"package", p.status.String(), Shipped.String(), ErrNotReadyToShip)
	}

	p.status = Shipped
	p.shippedAt = &now

	p.record(PackageShipped{
		PackageID:      p.id,
		Order:          p.orderID,
		TrackingNumber: p.trackingNumber,
		Carrier:        p.carrier,
		ShippedAt:      now,
	})
	return nil
}

// MarkDelivered confirms delivery of a shipped package or one in Exception.
func (p *Package) MarkDelivered(at time.Time) error {
	if p.status != Shipped && p.status != Exception {
		return errs.NewInvalidStateTransitionError("package", p.status.String(), Delivered.String())
	}

	p.status = Delivered
	p.deliveredAt = &at

	p.record(PackageDelivered{
		PackageID:   p.id,
		Order:       p.orderID,
		DeliveredAt: at,
	})
	return nil
}

// MarkException flags a carrier problem (lost, damaged, refused address) on a shipped package.
func (p *Package) MarkException(note string) error {
	if p.status != Shipped {
		return errs.NewInvalidStateTransitionError("package", p.status.String(), Exception.String())
	}

	p.status = Exception
	p.AddNote(note)
	return nil
}

// MarkReturned records that the carrier brought the package back to the warehouse.
func (p *Package) MarkReturned(note string) error {
	if p.status != Shipped && p.status != Exception {
		return errs.NewInvalidStateTransitionError("package", p.status.String(), Returned.String())
	}

	p.status = Returned
	p.AddNote(note)
	return nil
}

// AddNote appends a line to the free-text notes.
func (p *Package) AddNote(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if p.notes == "" {
		p.notes = note
		return
	}
	p.notes += "\n" + note
}

// RecordNotificationSent sets the shipment notification flag.
func (p *Package) RecordNotificationSent(now time.Time) {
	if p.notificationSent {
		return
	}
	p.notificationSent = true
	p.notificationSentAt = &now
}

// Label returns the printable label data. It needs a tracking number.
func (p *Package) Label(from kernel.Address) (Label, error) {
	if p.trackingNumber == "" {
		return Label{}, ErrMissingTrackingNumber
	}

	return Label{
		TrackingNumber: p.trackingNumber,
		Carrier:        p.carrier,
		LabelURL:       p.labelURL,
		From:           from,
		To:             p.shippingAddress,
		Dimensions:     p.dimensions,
		PickupPointID:  p.pickupPointID,
		Reference:      p.orderID.String(),
	}, nil
}

// PullEvents returns and clears the events recorded since the last call.
func (p *Package) PullEvents() []Event {
	events := p.events
	p.events = nil
	return events
}

func (p *Package) record(e Event) {
	p.events = append(p.events, e)
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	p.orderID = id
	return nil
}

func (p *Package) setDimensions(d kernel.Dimensions) error {
	if err := d.Validate(); err != nil {
		return err
	}
	p.dimensions = d
	return nil
}

func (p *Package) setCarrier(t carrier.Type) error {
	if t == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	p.carrier = t
	return nil
}

func (p *Package) setShippingAddress(a kernel.Address) error {
	if err := a.Validate(); err != nil {
		return err
	}
	p.shippingAddress = a
	return nil
}
