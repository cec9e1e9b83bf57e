package order

import (
	"fmt"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Transitions that emit a domain event:
//
//	Pending ──> PickedUp ──> Delivered
//	   │           │
//	   └─────┬─────┘
//	         v
//	      Returned
//
// The table only decides which event a transition emits. Whether a caller is
// allowed to perform a transition is decided by the use cases, which consult
// CanTransitionTo before mutating the order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the order waits for a deliveryman.
	Pending

	// PickedUp indicates a deliveryman has withdrawn the order.
	PickedUp

	// Delivered indicates the order reached its recipient. Final.
	Delivered

	// Returned indicates the order went back to the sender. Final.
	Returned
)

var statusNames = map[Status]string{
	Pending:   "pending",
	PickedUp:  "picked_up",
	Delivered: "delivered",
	Returned:  "returned",
}

type edge struct {
	from Status
	to   Status
}

var transitions = map[edge]kernel.EventKind{
	{Pending, PickedUp}:   PickedUpKind,
	{PickedUp, Delivered}: DeliveredKind,
	{Pending, Returned}:   ReturnedKind,
	{PickedUp, Returned}:  ReturnedKind,
}

// ParseStatus converts the persisted name of a status back into a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks if the Status value is one of the known states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// EventKindTo returns the kind of event emitted when moving from s to next.
// The second result is false when the pair is not an edge of the table.
func (s Status) EventKindTo(next Status) (kernel.EventKind, bool) {
	kind, ok := transitions[edge{s, next}]
	return kind, ok
}

// CanTransitionTo reports whether s -> next is an edge of the transition table.
func (s Status) CanTransitionTo(next Status) bool {
	_, ok := s.EventKindTo(next)
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned
}
