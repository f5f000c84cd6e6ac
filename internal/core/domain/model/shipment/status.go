package shipment

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a package.
type Status int

const (
	Unknown Status = iota
	Pending
	Preparing
	ReadyToShip
	Shipped
	Delivered
	Exception
	Returned
)

var statusStrings = map[Status]string{
	Unknown:     "Unknown",
	Pending:     "Pending",
	Preparing:   "Preparing",
	ReadyToShip: "ReadyToShip",
	Shipped:     "Shipped",
	Delivered:   "Delivered",
	Exception:   "Exception",
	Returned:    "Returned",
}

// ParseStatus converts a case-insensitive status name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusStrings {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid package status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > Returned {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid package status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// IsLabelled reports whether a label exists for a package in this status.
func (s Status) IsLabelled() bool {
	return s >= ReadyToShip
}

// HasLeftWarehouse reports whether the carrier has taken the package.
func (s Status) HasLeftWarehouse() bool {
	return s >= Shipped
}
