package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultEstimatedDeliveryDays is used when a shipment carries no carrier estimate.
const DefaultEstimatedDeliveryDays = 3

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoReturnInProgress is the cause of updating a return that was never requested.
	ErrNoReturnInProgress = errors.New("no return in progress")

	// ErrReturnAlreadySettled is the cause of updating a refunded or rejected return.
	ErrReturnAlreadySettled = errors.New("return already settled")

	// ErrStatusOwnedByReturn is the cause of a plain status change into, or out of, the
	// statuses that only RequestReturn and UpdateReturnStatus may set.
	ErrStatusOwnedByReturn = errors.New("status is managed by the return flow")

	// ErrOrderHasNoItems is returned when an order is created without line items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// ReturnEligibility decides whether an order may enter the return flow at a given instant.
// It returns nil when eligible and an errs.PolicyViolationError carrying the reason otherwise.
type ReturnEligibility interface {
	CheckReturn(o *Order, now time.Time) error
}

// Order is the aggregate root for a purchase. It owns order status, payment status,
// return bookkeeping and the shipment facts mirrored from the package lifecycle.
//
// Order follows these invariants:
//   - Must have a valid identifier, customer, shipping address and at least one line item
//   - Total amount always equals the sum of line item subtotals
//   - Status transitions follow the allowed-from table in status.go
//   - deliveredAt is stamped at most once, the first time the order becomes Delivered
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	items           []LineItem
	totalAmount     decimal.Decimal
	status          Status
	paymentStatus   PaymentStatus
	shippingAddress kernel.Address
	createdAt       time.Time

	deliveredAt *time.Time

	returnRequestedAt *time.Time
	returnReason      string
	returnStatus      ReturnStatus

	shippedAt             *time.Time
	estimatedDeliveryDate *time.Time
	trackingNumber        string
	carrierName           string
	estimatedDeliveryDays int

	version       int
	isConstructed bool
}

// NewOrder creates a Pending order as handed over by checkout. createdAt is the purchase
// date used by the warranty window.
//
// Example:
//
//	item, _ := order.NewLineItem(productID, "Kettle", 1, decimal.RequireFromString("49.90"))
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.LineItem{item},
//	    address, order.PaymentCompleted, clock.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	shippingAddress kernel.Address,
	paymentStatus PaymentStatus,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:                Pending,
		returnStatus:          ReturnStatusNone,
		estimatedDeliveryDays: DefaultEstimatedDeliveryDays,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setShippingAddress(shippingAddress),
		o.setPaymentStatus(paymentStatus),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreParams carries the persisted state of an order.
type RestoreParams struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	Items                 []LineItem
	Status                Status
	PaymentStatus         PaymentStatus
	ShippingAddress       kernel.Address
	CreatedAt             time.Time
	DeliveredAt           *time.Time
	ReturnRequestedAt     *time.Time
	ReturnReason          string
	ReturnStatus          ReturnStatus
	ShippedAt             *time.Time
	EstimatedDeliveryDate *time.Time
	TrackingNumber        string
	CarrierName           string
	EstimatedDeliveryDays int
	Version               int
}

// RestoreOrder rebuilds an order from storage. It validates field formats but not the
// lifecycle history that produced them.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		deliveredAt:           p.DeliveredAt,
		returnRequestedAt:     p.ReturnRequestedAt,
		returnReason:          p.ReturnReason,
		shippedAt:             p.ShippedAt,
		estimatedDeliveryDate: p.EstimatedDeliveryDate,
		trackingNumber:        p.TrackingNumber,
		carrierName:           p.CarrierName,
		estimatedDeliveryDays: p.EstimatedDeliveryDays,
		version:               p.Version,
		isConstructed:         true,
	}
	if o.estimatedDeliveryDays <= 0 {
		o.estimatedDeliveryDays = DefaultEstimatedDeliveryDays
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setCustomerID(p.CustomerID),
		o.setItems(p.Items),
		o.setShippingAddress(p.ShippingAddress),
		o.setPaymentStatus(p.PaymentStatus),
		o.setCreatedAt(p.CreatedAt),
		p.Status.Validate(),
		p.ReturnStatus.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = p.Status
	o.returnStatus = p.ReturnStatus

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                   { return o.id }
func (o *Order) CustomerID() kernel.UUID           { return o.customerID }
func (o *Order) TotalAmount() decimal.Decimal      { return o.totalAmount }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) PaymentStatus() PaymentStatus      { return o.paymentStatus }
func (o *Order) ShippingAddress() kernel.Address   { return o.shippingAddress }
func (o *Order) CreatedAt() time.Time              { return o.createdAt }
func (o *Order) DeliveredAt() *time.Time           { return copyTime(o.deliveredAt) }
func (o *Order) ReturnRequestedAt() *time.Time     { return copyTime(o.returnRequestedAt) }
func (o *Order) ReturnReason() string              { return o.returnReason }
func (o *Order) ReturnStatus() ReturnStatus        { return o.returnStatus }
func (o *Order) ShippedAt() *time.Time             { return copyTime(o.shippedAt) }
func (o *Order) EstimatedDeliveryDate() *time.Time { return copyTime(o.estimatedDeliveryDate) }
func (o *Order) TrackingNumber() string            { return o.trackingNumber }
func (o *Order) CarrierName() string               { return o.carrierName }
func (o *Order) EstimatedDeliveryDays() int        { return o.estimatedDeliveryDays }

// Version is the optimistic concurrency token read from storage.
func (o *Order) Version() int { return o.version }

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// ContainsProduct reports whether productID is one of the order's line items.
func (o *Order) ContainsProduct(productID kernel.UUID) bool {
	for _, item := range o.items {
		if item.ProductID().IsEqual(productID) {
			return true
		}
	}
	return false
}

// SetStatus moves the order to target if the transition table allows it. Entering
// Delivered stamps deliveredAt with now unless it is already set; that is the only
// place the return window starts.
//
// ReturnRequested and Returned are entered and left only through RequestReturn and
// UpdateReturnStatus; SetStatus rejects those edges with ErrStatusOwnedByReturn.
func (o *Order) SetStatus(target Status, now time.Time) error {
	if o.status.IsReturnOwned() || target.IsReturnOwned() {
		return errs.NewInvalidStateTransitionErrorWithCause(
			"order", o.status.String(), target.String(), ErrStatusOwnedByReturn)
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	if next == Delivered && o.deliveredAt == nil {
		o.deliveredAt = &now
	}
	return nil
}

// Cancel is a shortcut for SetStatus(Cancelled).
func (o *Order) Cancel(now time.Time) error {
	return o.SetStatus(Cancelled, now)
}

// RequestReturn opens a return. It fails with the eligibility's policy violation
// (reason codes AlreadyRequested, NotYetDelivered, MissingDeliveryDate, WindowExpired).
func (o *Order) RequestReturn(reason string, now time.Time, eligibility ReturnEligibility) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("returnReason")
	}
	if err := eligibility.CheckReturn(o, now); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(ReturnRequested)
	if err != nil {
		return err
	}

	o.status = next
	o.returnRequestedAt = &now
	o.returnReason = reason
	o.returnStatus = ReturnStatusRequested
	return nil
}

// UpdateReturnStatus records admin progress on an open return. Refunded settles it as
// Returned with the payment refunded; Rejected puts the order back to Delivered.
func (o *Order) UpdateReturnStatus(target ReturnStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if o.returnStatus == ReturnStatusNone {
		return errs.NewInvalidStateTransitionErrorWithCause(
			"order return", o.returnStatus.String(), target.String(), ErrNoReturnInProgress)
	}
	if o.returnStatus.IsSettled() {
		return errs.NewInvalidStateTransitionErrorWithCause(
			"order return", o.returnStatus.String(), target.String(), ErrReturnAlreadySettled)
	}
	if target == ReturnStatusNone || target == ReturnStatusRequested {
		return errs.NewInvalidStateTransitionError("order return", o.returnStatus.String(), target.String())
	}

	switch target {
	case ReturnStatusRefunded:
		next, err := o.status.TransitionTo(Returned)
		if err != nil {
			return err
		}
		o.status = next
		o.paymentStatus = PaymentRefunded
	case ReturnStatusRejected:
		next, err := o.status.TransitionTo(Delivered)
		if err != nil {
			return err
		}
		o.status = next
	}

	o.returnStatus = target
	return nil
}

// ApplyLabelGenerated mirrors the label facts of the order's package. Only orders that
// have not shipped yet accept them.
func (o *Order) ApplyLabelGenerated(trackingNumber, carrierName string, estimatedDelivery *time.Time) error {
	if o.status != Pending && o.status != Processing {
		return errs.NewInvalidStateTransitionError("order shipment", o.status.String(), "LabelGenerated")
	}
	if strings.TrimSpace(trackingNumber) == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	o.trackingNumber = trackingNumber
	o.carrierName = carrierName
	o.estimatedDeliveryDate = copyTime(estimatedDelivery)
	return nil
}

// ApplyLabelCancelled clears the label facts after the carrier cancelled the shipment.
func (o *Order) ApplyLabelCancelled() error {
	if o.status != Pending && o.status != Processing {
		return errs.NewInvalidStateTransitionError("order shipment", o.status.String(), "LabelCancelled")
	}

	o.trackingNumber = ""
	o.carrierName = ""
	o.estimatedDeliveryDate = nil
	return nil
}

// ApplyShipped moves the order to Shipped and stamps shippedAt. When no carrier
// estimate was mirrored, the estimate falls back to shippedAt + estimatedDeliveryDays.
func (o *Order) ApplyShipped(trackingNumber string, shippedAt time.Time) error {
	next, err := o.status.TransitionTo(Shipped)
	if err != nil {
		return err
	}

	o.status = next
	o.shippedAt = &shippedAt
	if trackingNumber != "" {
		o.trackingNumber = trackingNumber
	}
	if o.estimatedDeliveryDate == nil {
		estimate := shippedAt.AddDate(0, 0, o.estimatedDeliveryDays)
		o.estimatedDeliveryDate = &estimate
	}
	return nil
}

// ApplyDelivered moves the order to Delivered at the instant the carrier reported.
// An order that is already Delivered, or whose return is open or settled, is left unchanged.
func (o *Order) ApplyDelivered(deliveredAt time.Time) error {
	if o.status == Delivered || o.status.IsReturnOwned() {
		return nil
	}
	return o.SetStatus(Delivered, deliveredAt)
}

// String returns a log-friendly summary.
func (o *Order) String() string {
	return fmt.Sprintf("order %s (%s, %d items, total %s)", o.id, o.status, len(o.items), o.totalAmount.StringFixed(2))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	total := decimal.Zero
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.Subtotal())
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	o.totalAmount = total
	return nil
}

func (o *Order) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
