package kernel

import "time"

// EventKind is the tag subscribers use to select the events they react to.
type EventKind string

func (k EventKind) String() string {
	return string(k)
}

// DomainEvent is an immutable fact recorded by an aggregate while it was mutated.
//
// Concrete events may additionally carry a live pointer to the aggregate that
// raised them (not a snapshot). Such a pointer observes every field assigned
// after the event was recorded and before it was dispatched.
type DomainEvent interface {
	// OccurredAt returns the moment the event was recorded.
	OccurredAt() time.Time
	// AggregateID returns the identity of the aggregate that recorded the event.
	AggregateID() UUID
	// Kind returns the subscription tag of the event.
	Kind() EventKind
}

// BaseEvent implements DomainEvent. Embed it in concrete event types.
type BaseEvent struct {
	kind        EventKind
	aggregateID UUID
	occurredAt  time.Time
}

// NewBaseEvent stamps an event of the given kind for the aggregate with the current UTC time.
func NewBaseEvent(kind EventKind, aggregateID UUID) BaseEvent {
	return BaseEvent{
		kind:        kind,
		aggregateID: aggregateID,
		occurredAt:  time.Now().UTC(),
	}
}

func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }
func (e BaseEvent) AggregateID() UUID     { return e.aggregateID }
func (e BaseEvent) Kind() EventKind       { return e.kind }
