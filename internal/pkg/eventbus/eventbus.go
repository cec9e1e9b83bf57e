// Package eventbus delivers the domain events recorded by aggregates to the
// handlers subscribed for their kind.
//
// A Dispatcher is constructed explicitly by the composition root and handed to
// every subscriber and to the unit of work; there is no package-level registry.
// Delivery is synchronous on the caller's goroutine.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"fastfeet/internal/core/domain/model/kernel"
)

// ErrNoSubscribers is returned by Require when a mandatory event kind has no handler.
var ErrNoSubscribers = errors.New("no subscribers registered")

// Handler reacts to one domain event.
type Handler interface {
	Handle(ctx context.Context, event kernel.DomainEvent) error
}

// HandlerFunc is an adapter to use ordinary functions as event handlers.
type HandlerFunc func(ctx context.Context, event kernel.DomainEvent) error

func (f HandlerFunc) Handle(ctx context.Context, event kernel.DomainEvent) error {
	return f(ctx, event)
}

// Dispatcher maps event kinds to handlers in registration order.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[kernel.EventKind][]Handler
	logger   *slog.Logger
}

func New(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[kernel.EventKind][]Handler),
		logger:   logger.With("component", "eventbus"),
	}
}

// Subscribe appends handler to the handlers of kind.
func (d *Dispatcher) Subscribe(kind kernel.EventKind, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[kind] = append(d.handlers[kind], handler)
	d.logger.Debug("subscribed to event", slog.String("event_kind", kind.String()))
}

// Require reports every listed kind that has no handler. The composition root
// calls it once at start-up; missing handlers at dispatch time are not an error.
func (d *Dispatcher) Require(kinds ...kernel.EventKind) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var missing []string
	for _, kind := range kinds {
		if len(d.handlers[kind]) == 0 {
			missing = append(missing, kind.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrNoSubscribers, missing)
	}
	return nil
}

// Dispatch pulls the pending events of source and delivers each of them, in
// the order they were recorded, to every handler of its kind in registration
// order.
//
// A failing or panicking handler does not stop delivery to the remaining
// handlers and events. Failures are logged and returned joined.
func (d *Dispatcher) Dispatch(ctx context.Context, source kernel.EventSource) error {
	var errs []error
	for _, event := range source.PullDomainEvents() {
		errs = append(errs, d.publish(ctx, event)...)
	}
	return errors.Join(errs...)
}

func (d *Dispatcher) publish(ctx context.Context, event kernel.DomainEvent) []error {
	d.mu.RLock()
	handlers := slices.Clone(d.handlers[event.Kind()])
	d.mu.RUnlock()

	d.logger.Debug("dispatching event",
		slog.String("event_kind", event.Kind().String()),
		slog.String("aggregate_id", event.AggregateID().String()),
		slog.Int("handler_count", len(handlers)))

	var errs []error
	for _, handler := range handlers {
		if err := invoke(ctx, handler, event); err != nil {
			d.logger.Error("event handler failed",
				slog.String("event_kind", event.Kind().String()),
				slog.String("aggregate_id", event.AggregateID().String()),
				slog.Any("error", err))
			errs = append(errs, err)
		}
	}
	return errs
}

func invoke(ctx context.Context, handler Handler, event kernel.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler for %s panicked: %v", event.Kind(), r)
		}
	}()
	return handler.Handle(ctx, event)
}
