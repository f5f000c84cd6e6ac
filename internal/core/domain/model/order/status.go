package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered ──> ReturnRequested ──> Returned
//	   │            │             │             ^                │
//	   │            │             │             └────────────────┘ (return rejected)
//	   └────────────┴─────────────┴──> Cancelled
//
// Pending may also move straight to Shipped when a package ships before anyone
// marked the order as Processing.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a paid order handed over by checkout.
	Pending

	// Processing indicates fulfillment has started.
	Processing

	// Shipped indicates the package left the warehouse.
	Shipped

	// Delivered indicates the customer received the package. The return window starts here.
	Delivered

	// Cancelled is final.
	Cancelled

	// ReturnRequested indicates the customer opened a return within the window.
	ReturnRequested

	// Returned is final: the return was refunded.
	Returned
)

// allowedFrom lists, per target status, the statuses it may be entered from.
// Any edge not listed here is rejected.
var allowedFrom = map[Status][]Status{
	Processing:      {Pending},
	Shipped:         {Pending, Processing},
	Delivered:       {Shipped, ReturnRequested},
	Cancelled:       {Pending, Processing, Shipped},
	ReturnRequested: {Delivered},
	Returned:        {ReturnRequested},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		Processing:      "Processing",
		Shipped:         "Shipped",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
		ReturnRequested: "ReturnRequested",
		Returned:        "Returned",
	}
}

// ParseStatus converts a case-insensitive status name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > Returned {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transition leaves s.
func (s Status) IsFinal() bool {
	return s == Cancelled || s == Returned
}

// IsReturnOwned reports whether s belongs to the return flow (ReturnRequested, Returned).
func (s Status) IsReturnOwned() bool {
	return s == ReturnRequested || s == Returned
}

// CanTransitionTo reports whether the table allows moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, from := range allowedFrom[target] {
		if from == s {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the edge s -> target is allowed.
//
// Example:
//
//	next, err := order.Delivered.TransitionTo(order.ReturnRequested)
//	// next == order.ReturnRequested, err == nil
//
//	_, err = order.Delivered.TransitionTo(order.Pending)
//	// errors.Is(err, errs.ErrInvalidStateTransition) == true
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidStateTransitionError("order", s.String(), target.String())
	}
	return target, nil
}
