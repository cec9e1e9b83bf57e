package eventbus_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	kindA kernel.EventKind = "test.a"
	kindB kernel.EventKind = "test.b"
)

type fakeAggregate struct {
	events kernel.AggregateRoot
}

func (a *fakeAggregate) record(kinds ...kernel.EventKind) {
	for _, kind := range kinds {
		a.events.Record(kernel.NewBaseEvent(kind, kernel.NewUUID()))
	}
}

func (a *fakeAggregate) PullDomainEvents() []kernel.DomainEvent {
	return a.events.PullDomainEvents()
}

func newDispatcher() *eventbus.Dispatcher {
	return eventbus.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func recorder(log *[]string, name string) eventbus.Handler {
	return eventbus.HandlerFunc(func(_ context.Context, e kernel.DomainEvent) error {
		*log = append(*log, name+":"+e.Kind().String())
		return nil
	})
}

func TestDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("should invoke no handler for an empty queue", func(t *testing.T) {
		d := newDispatcher()
		var calls []string
		d.Subscribe(kindA, recorder(&calls, "h"))

		require.NoError(t, d.Dispatch(ctx, &fakeAggregate{}))

		assert.Empty(t, calls)
	})

	t.Run("should deliver events in record order to handlers in registration order", func(t *testing.T) {
		d := newDispatcher()
		var calls []string
		d.Subscribe(kindA, recorder(&calls, "first"))
		d.Subscribe(kindB, recorder(&calls, "only-b"))
		d.Subscribe(kindA, recorder(&calls, "second"))

		agg := &fakeAggregate{}
		agg.record(kindA, kindB, kindA)

		require.NoError(t, d.Dispatch(ctx, agg))

		assert.Equal(t, []string{
			"first:test.a", "second:test.a",
			"only-b:test.b",
			"first:test.a", "second:test.a",
		}, calls)
	})

	t.Run("should drain the queue so a second dispatch delivers nothing", func(t *testing.T) {
		d := newDispatcher()
		var calls []string
		d.Subscribe(kindA, recorder(&calls, "h"))

		agg := &fakeAggregate{}
		agg.record(kindA)

		require.NoError(t, d.Dispatch(ctx, agg))
		require.NoError(t, d.Dispatch(ctx, agg))

		assert.Len(t, calls, 1)
	})

	t.Run("should ignore events without subscribers", func(t *testing.T) {
		d := newDispatcher()
		agg := &fakeAggregate{}
		agg.record(kindB)

		require.NoError(t, d.Dispatch(ctx, agg))
	})

	t.Run("should keep delivering after a handler fails or panics", func(t *testing.T) {
		d := newDispatcher()
		var calls []string
		boom := errors.New("boom")
		d.Subscribe(kindA, eventbus.HandlerFunc(func(context.Context, kernel.DomainEvent) error {
			return boom
		}))
		d.Subscribe(kindA, eventbus.HandlerFunc(func(context.Context, kernel.DomainEvent) error {
			panic("kaboom")
		}))
		d.Subscribe(kindA, recorder(&calls, "last"))

		agg := &fakeAggregate{}
		agg.record(kindA, kindA)

		err := d.Dispatch(ctx, agg)

		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "panicked: kaboom")
		assert.Equal(t, []string{"last:test.a", "last:test.a"}, calls)
	})
}

func TestDispatcher_Require(t *testing.T) {
	d := newDispatcher()
	d.Subscribe(kindA, eventbus.HandlerFunc(func(context.Context, kernel.DomainEvent) error { return nil }))

	t.Run("should pass when every kind has a handler", func(t *testing.T) {
		require.NoError(t, d.Require(kindA))
	})

	t.Run("should name the missing kinds", func(t *testing.T) {
		err := d.Require(kindA, kindB)

		require.ErrorIs(t, err, eventbus.ErrNoSubscribers)
		assert.Contains(t, err.Error(), "test.b")
		assert.NotContains(t, err.Error(), "test.a")
	})
}
