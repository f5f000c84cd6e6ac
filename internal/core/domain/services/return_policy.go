package services

import (
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ReturnWindow is the period after delivery during which a return may be requested.
const ReturnWindow = 14 * 24 * time.Hour

// Return ineligibility reason codes, in evaluation order.
const (
	ReasonAlreadyRequested    = "ALREADY_REQUESTED"
	ReasonNotYetDelivered     = "NOT_YET_DELIVERED"
	ReasonMissingDeliveryDate = "MISSING_DELIVERY_DATE"
	ReasonWindowExpired       = "WINDOW_EXPIRED"
)

// ReturnPolicyName identifies return violations in errs.PolicyViolationError.
const ReturnPolicyName = "return"

// ReturnPolicy evaluates return eligibility from order facts and the current time.
//
// Example:
//
//	policy := services.NewReturnPolicy()
//	if reason, ok := policy.ExplainIneligibility(o, now); ok {
//	    log.Printf("cannot return: %s", reason)
//	}
type ReturnPolicy struct {
	window time.Duration
}

// NewReturnPolicy creates a policy with the 14-day return window.
func NewReturnPolicy() ReturnPolicy {
	return ReturnPolicy{window: ReturnWindow}
}

// ReturnDeadline returns deliveredAt + 14 days, or false when the order was never delivered.
func (p ReturnPolicy) ReturnDeadline(o *order.Order) (time.Time, bool) {
	delivered := o.DeliveredAt()
	if delivered == nil {
		return time.Time{}, false
	}
	return delivered.Add(p.window), true
}

// CanReturn reports whether the order may enter the return flow at now.
func (p ReturnPolicy) CanReturn(o *order.Order, now time.Time) bool {
	_, ineligible := p.ExplainIneligibility(o, now)
	return !ineligible
}

// ExplainIneligibility returns the first failing rule: an existing return, a status other
// than Delivered, a missing delivery date, then an expired window. The deadline itself is
// still inside the window.
func (p ReturnPolicy) ExplainIneligibility(o *order.Order, now time.Time) (string, bool) {
	switch {
	case o.ReturnStatus() != order.ReturnStatusNone:
		return ReasonAlreadyRequested, true
	case o.Status() != order.Delivered:
		return ReasonNotYetDelivered, true
	case o.DeliveredAt() == nil:
		return ReasonMissingDeliveryDate, true
	}

	deadline, _ := p.ReturnDeadline(o)
	if now.After(deadline) {
		return ReasonWindowExpired, true
	}
	return "", false
}

// CheckReturn implements order.ReturnEligibility.
func (p ReturnPolicy) CheckReturn(o *order.Order, now time.Time) error {
	if reason, ineligible := p.ExplainIneligibility(o, now); ineligible {
		return errs.NewPolicyViolationError(ReturnPolicyName, reason)
	}
	return nil
}
