package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// ReturnStatus tracks an order's return from request to settlement.
//
//	None ──> Requested ──> Approved ──> InTransit ──> Received ──> Refunded
//	              │            │            │             │
//	              └────────────┴────────────┴─────────────┴──────> Rejected
//
// Intermediate steps are set by admins in any order; Refunded and Rejected settle the return.
type ReturnStatus int

const (
	ReturnStatusUnknown ReturnStatus = iota
	ReturnStatusNone
	ReturnStatusRequested
	ReturnStatusApproved
	ReturnStatusInTransit
	ReturnStatusReceived
	ReturnStatusRefunded
	ReturnStatusRejected
)

var returnStatusStrings = map[ReturnStatus]string{
	ReturnStatusUnknown:   "Unknown",
	ReturnStatusNone:      "None",
	ReturnStatusRequested: "Requested",
	ReturnStatusApproved:  "Approved",
	ReturnStatusInTransit: "InTransit",
	ReturnStatusReceived:  "Received",
	ReturnStatusRefunded:  "Refunded",
	ReturnStatusRejected:  "Rejected",
}

// ParseReturnStatus converts a case-insensitive name into a ReturnStatus.
func ParseReturnStatus(s string) (ReturnStatus, error) {
	for status, name := range returnStatusStrings {
		if status != ReturnStatusUnknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return ReturnStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"return status is invalid", fmt.Errorf("%q is not a valid return status", s))
}

// Validate rejects ReturnStatusUnknown and out-of-range values.
func (s ReturnStatus) Validate() error {
	if s <= ReturnStatusUnknown || s > ReturnStatusRejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"return status is invalid", fmt.Errorf("%d is not a valid return status", s))
	}
	return nil
}

func (s ReturnStatus) String() string {
	if str, ok := returnStatusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// IsSettled reports whether the return reached Refunded or Rejected.
func (s ReturnStatus) IsSettled() bool {
	return s == ReturnStatusRefunded || s == ReturnStatusRejected
}
