package warranty

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the review state of a warranty claim.
//
//	Submitted ──> UnderReview ──┬──> Approved ──> Resolved
//	    │                       └──> Rejected
//	    └──> Approved | Rejected (decided without a review step)
type Status int

const (
	Unknown Status = iota
	Submitted
	UnderReview
	Approved
	Rejected
	Resolved
)

var allowedFrom = map[Status][]Status{
	UnderReview: {Submitted},
	Approved:    {Submitted, UnderReview},
	Rejected:    {Submitted, UnderReview},
	Resolved:    {Approved},
}

var statusStrings = map[Status]string{
	Unknown:     "Unknown",
	Submitted:   "Submitted",
	UnderReview: "UnderReview",
	Approved:    "Approved",
	Rejected:    "Rejected",
	Resolved:    "Resolved",
}

// ParseStatus converts a case-insensitive status name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusStrings {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid claim status", s))
}

// Validate checks if the Status value is defined.
func (s Status) Validate() error {
	if s <= Unknown || s > Resolved {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid claim status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// IsClosed reports whether the claim reached Rejected or Resolved.
func (s Status) IsClosed() bool {
	return s == Rejected || s == Resolved
}

// TransitionTo returns target if the review edge s -> target is allowed.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	for _, from := range allowedFrom[target] {
		if from == s {
			return target, nil
		}
	}
	return Unknown, errs.NewInvalidStateTransitionError("warranty claim", s.String(), target.String())
}
