package order

import "fastfeet/internal/core/domain/model/kernel"

// Event kinds recorded by the Order aggregate.
const (
	CreatedKind   kernel.EventKind = "order.created"
	PickedUpKind  kernel.EventKind = "order.picked_up"
	DeliveredKind kernel.EventKind = "order.delivered"
	ReturnedKind  kernel.EventKind = "order.returned"
)

// Event is implemented by every order event. Order returns the live aggregate
// that recorded the event, so fields assigned after the event was recorded are
// visible to subscribers at dispatch time.
type Event interface {
	kernel.DomainEvent
	Order() *Order
}

type orderEvent struct {
	kernel.BaseEvent
	order *Order
}

func newOrderEvent(kind kernel.EventKind, o *Order) orderEvent {
	return orderEvent{
		BaseEvent: kernel.NewBaseEvent(kind, o.id),
		order:     o,
	}
}

func (e orderEvent) Order() *Order {
	return e.order
}

// OrderCreated is recorded once, when a new order is created.
type OrderCreated struct{ orderEvent }

// OrderPickedUp is recorded on pending -> picked_up.
type OrderPickedUp struct{ orderEvent }

// OrderDelivered is recorded on picked_up -> delivered.
type OrderDelivered struct{ orderEvent }

// OrderReturned is recorded on pending|picked_up -> returned.
type OrderReturned struct{ orderEvent }

func newTransitionEvent(kind kernel.EventKind, o *Order) kernel.DomainEvent {
	base := newOrderEvent(kind, o)
	switch kind {
	case PickedUpKind:
		return OrderPickedUp{base}
	case DeliveredKind:
		return OrderDelivered{base}
	case ReturnedKind:
		return OrderReturned{base}
	default:
		return base
	}
}
