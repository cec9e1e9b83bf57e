package ports

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
)

// NotificationRepository persists the notifications sent to recipients.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error

	// Update persists the read marker.
	Update(ctx context.Context, n *notification.Notification) error

	// Get returns errs.ErrObjectNotFound if there is no such notification.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// DeleteReadBefore removes notifications read before the given time and
	// returns how many were removed.
	DeleteReadBefore(ctx context.Context, before time.Time) (int64, error)
}

// NotificationPublisher pushes a stored notification to the recipient's live
// channel. Delivery is best effort.
type NotificationPublisher interface {
	Publish(ctx context.Context, n *notification.Notification) error
}
