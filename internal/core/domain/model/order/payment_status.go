package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// PaymentStatus mirrors the payment provider's view of the order charge.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentCompleted
	PaymentFailed
	PaymentRefunded
)

var paymentStatusStrings = map[PaymentStatus]string{
	PaymentUnknown:   "Unknown",
	PaymentPending:   "Pending",
	PaymentCompleted: "Completed",
	PaymentFailed:    "Failed",
	PaymentRefunded:  "Refunded",
}

// ParsePaymentStatus converts a case-insensitive name into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, name := range paymentStatusStrings {
		if status != PaymentUnknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate rejects PaymentUnknown and out-of-range values.
func (s PaymentStatus) Validate() error {
	if s <= PaymentUnknown || s > PaymentRefunded {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s PaymentStatus) String() string {
	if str, ok := paymentStatusStrings[s]; ok {
		return str
	}
	return "Unknown"
}
