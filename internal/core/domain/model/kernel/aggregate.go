package kernel

import "sync"

// EventSource is implemented by aggregates whose pending events can be drained for dispatch.
type EventSource interface {
	PullDomainEvents() []DomainEvent
}

// AggregateRoot holds the ordered queue of events an aggregate recorded and
// that have not been dispatched yet.
//
// Aggregates keep it in an unexported field rather than embedding it, so that
// only the aggregate's own methods can record events:
//
//	type Order struct {
//	    id     kernel.UUID
//	    events kernel.AggregateRoot
//	}
//
//	func (o *Order) PullDomainEvents() []kernel.DomainEvent {
//	    return o.events.PullDomainEvents()
//	}
//
// The zero value is an empty queue ready for use. AggregateRoot must not be copied.
type AggregateRoot struct {
	mu           sync.Mutex
	domainEvents []DomainEvent
}

// Record appends an event to the end of the queue.
func (a *AggregateRoot) Record(event DomainEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.domainEvents = append(a.domainEvents, event)
}

// PullDomainEvents returns the queued events in the order they were recorded
// and empties the queue in the same critical section, so concurrent pulls
// never deliver an event twice or lose one.
func (a *AggregateRoot) PullDomainEvents() []DomainEvent {
	a.mu.Lock()
	defer a.mu.Unlock()

	pulled := a.domainEvents
	a.domainEvents = nil
	if pulled == nil {
		return []DomainEvent{}
	}
	return pulled
}

// PendingCount returns the number of queued events.
func (a *AggregateRoot) PendingCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.domainEvents)
}
