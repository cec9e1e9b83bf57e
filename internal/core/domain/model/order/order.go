package order

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a delivery. It owns its status, the
// deliveryman currently responsible for it and the attachment links proving
// the delivery.
//
// Order records domain events while it is mutated: OrderCreated on creation
// and one event per status transition of the table in Status. The events stay
// queued on the instance until the aggregate is persisted and the unit of work
// dispatches them.
//
// Setters do not enforce who may move the order nor whether a transition is
// allowed; use cases check that with Status.CanTransitionTo before calling them.
type Order struct {
	id            kernel.UUID
	recipientID   kernel.UUID
	deliverymanID *kernel.UUID
	status        Status
	attachments   *AttachmentList
	createdAt     time.Time
	updatedAt     *time.Time

	events kernel.AggregateRoot

	isConstructed bool
}

// NewOrder creates a pending order for the recipient and records OrderCreated.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), recipientID)
//	if err != nil {
//	    return err
//	}
//	o.PendingEventCount() // 1
func NewOrder(id kernel.UUID, recipientID kernel.UUID) (*Order, error) {
	o := &Order{
		status:        Pending,
		attachments:   NewAttachmentList(),
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRecipientID(recipientID),
	); err != nil {
		return nil, err
	}

	o.events.Record(OrderCreated{newOrderEvent(CreatedKind, o)})
	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. No event is recorded.
func RestoreOrder(
	id kernel.UUID,
	recipientID kernel.UUID,
	deliverymanID *kernel.UUID,
	status Status,
	attachments []OrderAttachment,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Order, error) {
	o := &Order{
		attachments:   NewAttachmentList(attachments...),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	var deliverymanErr error
	if deliverymanID != nil {
		deliverymanErr = deliverymanID.Validate()
	}
	statusErr := status.Validate()

	if err := errors.Join(
		o.setID(id),
		o.setRecipientID(recipientID),
		deliverymanErr,
		statusErr,
	); err != nil {
		return nil, err
	}

	o.deliverymanID = deliverymanID
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was built by one of the constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID          { return o.id }
func (o *Order) RecipientID() kernel.UUID { return o.recipientID }
func (o *Order) Status() Status           { return o.status }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }

// DeliverymanID returns the responsible deliveryman, nil while nobody picked the order up.
func (o *Order) DeliverymanID() *kernel.UUID {
	return o.deliverymanID
}

// UpdatedAt returns the time of the last setter call, nil for an untouched order.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// Attachments returns the watched attachment links. Repositories read
// NewItems and RemovedItems from it to persist only the difference.
func (o *Order) Attachments() *AttachmentList {
	return o.attachments
}

// SetStatus moves the order to next.
//
//   - next equal to the current status: nothing is recorded
//   - current -> next is an edge of the table: exactly one event is recorded
//   - any other pair: the status is assigned without an event
//
// updatedAt is refreshed in every case. The only error is an invalid next.
func (o *Order) SetStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if next != o.status {
		if kind, ok := o.status.EventKindTo(next); ok {
			o.events.Record(newTransitionEvent(kind, o))
		}
		o.status = next
	}

	o.touch()
	return nil
}

// SetDeliveryman assigns the deliveryman responsible for the order.
func (o *Order) SetDeliveryman(deliverymanID kernel.UUID) error {
	if err := deliverymanID.Validate(); err != nil {
		return err
	}

	o.deliverymanID = &deliverymanID
	o.touch()
	return nil
}

// UpdateAttachments replaces the attachment links of the order with the given
// attachment ids and returns the links added and removed by this call.
func (o *Order) UpdateAttachments(attachmentIDs ...kernel.UUID) (added, removed []OrderAttachment, err error) {
	links := make([]OrderAttachment, 0, len(attachmentIDs))
	for _, attachmentID := range attachmentIDs {
		link, err := NewOrderAttachment(o.id, attachmentID)
		if err != nil {
			return nil, nil, err
		}
		links = append(links, link)
	}

	added, removed = o.attachments.Update(links)
	o.touch()
	return added, removed, nil
}

// PullDomainEvents returns the recorded events in order and clears the queue.
func (o *Order) PullDomainEvents() []kernel.DomainEvent {
	return o.events.PullDomainEvents()
}

// PendingEventCount returns how many events wait for dispatch.
func (o *Order) PendingEventCount() int {
	return o.events.PendingCount()
}

func (o *Order) touch() {
	now := time.Now().UTC()
	o.updatedAt = &now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	o.recipientID = recipientID
	return nil
}
