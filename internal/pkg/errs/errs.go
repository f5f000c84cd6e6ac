package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the kind of every "id does not resolve" error.
	ErrObjectNotFound = errors.New("object not found")
	// ErrObjectAlreadyExists is returned when a uniqueness rule would be broken by a create.
	ErrObjectAlreadyExists = errors.New("object already exists")
	// ErrValueIsInvalid is the kind of every validation failure on a single value.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange is the kind of every numeric or temporal bounds violation.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsRequired is the kind of every missing-value failure.
	ErrValueIsRequired = errors.New("value is required")
	// ErrVersionIsInvalid is returned when a persisted record changed since it was read.
	ErrVersionIsInvalid = errors.New("version is invalid")
	// ErrInvalidStateTransition is the kind of every rejected lifecycle transition.
	ErrInvalidStateTransition = errors.New("invalid state transition")
	// ErrPolicyViolation is the kind of every failed return or warranty eligibility check.
	ErrPolicyViolation = errors.New("policy violation")
	// ErrForbidden is returned when an actor neither owns a resource nor holds elevated privilege.
	ErrForbidden = errors.New("forbidden")
	// ErrUnsupportedCarrier is returned when no carrier integration handles the requested carrier.
	ErrUnsupportedCarrier = errors.New("unsupported carrier")
	// ErrUpstreamUnavailable is the kind of every carrier network or API failure.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// ObjectNotFoundError reports an identifier that does not resolve.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError reports a create that collides with an existing record.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError without cause.
func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError that also matches cause.
func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrObjectAlreadyExists, e.ParamName, sanitize(e.ID))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ObjectAlreadyExistsError) Unwrap() []error {
	return withCause(ErrObjectAlreadyExists, e.Cause)
}

// ValueIsInvalidError reports a single invalid value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with the underlying reason.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without cause.
func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError with the underlying reason.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value any,
	minValue any,
	maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with the underlying reason.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError reports a stale write: the record was modified by someone else
// between read and save.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError with cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without cause.
// The name is kept for call-site compatibility.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// InvalidStateTransitionError reports a lifecycle edge that the state machine does not allow.
// Cause carries the domain-specific reason (e.g. "label already generated") and is matched
// by errors.Is alongside ErrInvalidStateTransition.
type InvalidStateTransitionError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError without cause.
func NewInvalidStateTransitionError(entity, from, to string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Entity: entity, From: from, To: to}
}

// NewInvalidStateTransitionErrorWithCause creates an InvalidStateTransitionError with a reason.
func NewInvalidStateTransitionErrorWithCause(entity, from, to string, cause error) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Entity: entity, From: from, To: to, Cause: cause}
}

func (e *InvalidStateTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidStateTransition, e.Entity, e.From, e.To)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *InvalidStateTransitionError) Unwrap() []error {
	return withCause(ErrInvalidStateTransition, e.Cause)
}

// PolicyViolationError reports a failed eligibility rule. Reason is a stable code
// meant for user-facing messaging and branching.
type PolicyViolationError struct {
	Policy string
	Reason string
	Cause  error
}

// NewPolicyViolationError creates a PolicyViolationError without cause.
func NewPolicyViolationError(policy, reason string) *PolicyViolationError {
	return &PolicyViolationError{Policy: policy, Reason: reason}
}

// NewPolicyViolationErrorWithCause creates a PolicyViolationError that also matches cause.
func NewPolicyViolationErrorWithCause(policy, reason string, cause error) *PolicyViolationError {
	return &PolicyViolationError{Policy: policy, Reason: reason, Cause: cause}
}

func (e *PolicyViolationError) Error() string {
	msg := fmt.Sprintf("%s: %s (reason: %s)", ErrPolicyViolation, e.Policy, e.Reason)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *PolicyViolationError) Unwrap() []error {
	return withCause(ErrPolicyViolation, e.Cause)
}

// ReasonOf extracts the reason code of the first PolicyViolationError in err's tree.
func ReasonOf(err error) (string, bool) {
	var pv *PolicyViolationError
	if errors.As(err, &pv) {
		return pv.Reason, true
	}
	return "", false
}

// ForbiddenError reports an actor acting on a resource it does not own.
type ForbiddenError struct {
	ActorID  string
	Resource string
	ID       any
}

// NewForbiddenError creates a ForbiddenError.
func NewForbiddenError(actorID, resource string, id any) *ForbiddenError {
	return &ForbiddenError{ActorID: actorID, Resource: resource, ID: id}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: actor %s cannot access %s %s", ErrForbidden, e.ActorID, e.Resource, sanitize(e.ID))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// UnsupportedCarrierError reports a carrier with no registered integration.
type UnsupportedCarrierError struct {
	Carrier string
}

// NewUnsupportedCarrierError creates an UnsupportedCarrierError.
func NewUnsupportedCarrierError(carrier string) *UnsupportedCarrierError {
	return &UnsupportedCarrierError{Carrier: carrier}
}

func (e *UnsupportedCarrierError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedCarrier, e.Carrier)
}

func (e *UnsupportedCarrierError) Unwrap() error {
	return ErrUnsupportedCarrier
}

// UpstreamUnavailableError reports a failed call to an external carrier system.
type UpstreamUnavailableError struct {
	Upstream string
	Cause    error
}

// NewUpstreamUnavailableError creates an UpstreamUnavailableError wrapping cause.
func NewUpstreamUnavailableError(upstream string, cause error) *UpstreamUnavailableError {
	return &UpstreamUnavailableError{Upstream: upstream, Cause: cause}
}

func (e *UpstreamUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrUpstreamUnavailable, e.Upstream, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUpstreamUnavailable, e.Upstream)
}

func (e *UpstreamUnavailableError) Unwrap() []error {
	return withCause(ErrUpstreamUnavailable, e.Cause)
}

func withCause(kind error, cause error) []error {
	if cause == nil {
		return []error{kind}
	}
	return []error{kind, cause}
}

// sanitize renders v on a single line so that error messages stay log friendly.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
