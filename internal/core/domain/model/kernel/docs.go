// Package kernel provides the building blocks shared by every aggregate of the
// fastfeet domain model.
//
// The package includes:
//   - UUID: the identity value object; entities compare by identity only
//   - Location: a geographic point with haversine distance
//   - AggregateRoot: the private queue of not-yet-dispatched domain events
//   - DomainEvent / BaseEvent: immutable facts recorded by aggregates
//   - WatchedList: a collection that tracks additions and removals against a baseline
//
// Events recorded on an AggregateRoot are dispatched only after the aggregate
// has been persisted; see package eventbus and the postgres unit of work.
package kernel
