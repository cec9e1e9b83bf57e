// Package order provides the Order aggregate root of fastfeet and its status
// state machine.
//
// The package includes:
//   - Order: the aggregate that records domain events as its status changes
//   - Status: the lifecycle states and the table of event-bearing transitions
//   - OrderAttachment / AttachmentList: the watched links to delivery photos
//   - OrderCreated, OrderPickedUp, OrderDelivered, OrderReturned: the recorded events
//
// Transition table:
//
//	pending   -> picked_up : OrderPickedUp
//	picked_up -> delivered : OrderDelivered
//	pending   -> returned  : OrderReturned
//	picked_up -> returned  : OrderReturned
//
// Events are kept on the aggregate until it has been persisted, so a
// transition that was never stored is never announced.
package order
