// Package errs holds the error kinds shared by the domain, the use cases and the adapters.
//
// Every kind is a sentinel (ErrObjectNotFound, ErrInvalidStateTransition,
// ErrPolicyViolation, ...) plus a struct carrying the details. The struct unwraps to its
// sentinel, so callers branch with errors.Is and read details with errors.As:
//
//	var pv *errs.PolicyViolationError
//	if errors.As(err, &pv) {
//	    // pv.Reason is WindowExpired, NotDelivered, AlreadyRequested, ...
//	}
//
// Constructors come in pairs, with and without a cause.
package errs
