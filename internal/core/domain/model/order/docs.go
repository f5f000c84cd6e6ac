// Package order implements the Order aggregate: the commercial side of a purchase from
// checkout to delivery, including return bookkeeping.
//
// The package includes:
//   - Order: the aggregate root holding line items, payment, return and shipment facts
//   - Status: the order state machine, driven by an explicit allowed-from table
//   - PaymentStatus and ReturnStatus: the secondary lifecycles carried by the order
//   - LineItem: an immutable product snapshot with quantity and unit price
//
// Key business rules:
//   - Status transitions fail closed with errs.ErrInvalidStateTransition
//   - Setting Delivered stamps deliveredAt once; that instant starts the return window
//   - Shipment facts (tracking number, carrier, estimate, shippedAt) are written only by
//     the Apply* methods, which react to package lifecycle events
//   - A return may only be requested when the injected ReturnEligibility agrees
package order
