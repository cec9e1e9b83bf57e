// Package ports defines the contracts between the fastfeet core and its
// infrastructure: repositories, the unit of work and the real-time publisher.
package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Add and Update hand the aggregate to the unit of work, which dispatches its
// pending events once the write is durable.
type OrderRepository interface {
	// Add persists a new order together with its full attachment set.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the changed fields and only the attachment links added
	// or removed since the order was loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its attachment links.
	// Returns errs.ErrObjectNotFound if there is no such order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its attachment links.
	Delete(ctx context.Context, aggregate *order.Order) error
}

// OrderAttachmentRepository persists the links between orders and uploaded attachments.
type OrderAttachmentRepository interface {
	// CreateMany inserts the links. Empty input is a no-op; links that already
	// exist are left untouched.
	CreateMany(ctx context.Context, attachments []order.OrderAttachment) error

	// DeleteMany removes the links. Empty input is a no-op; missing links are ignored.
	DeleteMany(ctx context.Context, attachments []order.OrderAttachment) error

	// GetManyByOrderID returns the persisted links of the order.
	GetManyByOrderID(ctx context.Context, orderID kernel.UUID) ([]order.OrderAttachment, error)
}
