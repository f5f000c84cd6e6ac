// Package guard holds the constructor guard shared by aggregates, value objects,
// commands and queries.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Its zero value is
// "not constructed", so embedding it lets Validate tell a real Order or Package apart
// from a literal `Order{}` that skipped every invariant check.
//
// Example:
//
//	type Dimensions struct {
//	    weightKg float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func (d Dimensions) Validate() error {
//	    return d.guard.Validate(ErrDimensionsIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guarded value was not produced by its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
