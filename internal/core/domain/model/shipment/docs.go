// Package shipment implements the Package aggregate: the physical parcel prepared,
// labelled and handed to a carrier for one order.
//
// Package lifecycle:
//
//	Pending ──> Preparing ──> ReadyToShip ──> Shipped ──┬──> Delivered
//	   │                          │   ^                 ├──> Exception ──┬──> Delivered
//	   └──────────────────────────┘   │                 │                └──> Returned
//	        (label generated)         │                 └──> Returned
//	           Preparing <────────────┘ (label cancelled)
//
// Every transition that the order must know about records a domain Event; callers pull
// them with PullEvents after persisting the package.
package shipment
