// Package services provides the pure domain services of the fulfillment engine and
// the carrier router.
//
// The package includes:
//   - ReturnPolicy: return eligibility, ineligibility reason and return deadline
//   - WarrantyPolicy: warranty expiration, filing eligibility and coverage checks
//   - DeliveryMonitor: delivery-delay detection over single orders or collections
//   - CarrierRouter: selection of the carrier gateway for a carrier, and sequential
//     probing of every gateway for tracking lookups and cancellations
//
// Policies hold no state besides their configuration and never read the wall clock;
// callers pass the current time explicitly.
package services
