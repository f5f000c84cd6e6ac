// Package kernel provides the shared value objects of the fulfillment domain: identifiers,
// postal addresses, package dimensions, the acting identity and the clock.
//
// Value objects are immutable and validated by their constructors; a zero value fails
// Validate via the embedded guard.ConstructorGuard.
package kernel
