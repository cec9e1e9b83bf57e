// Package redis pushes stored notifications to per-recipient Redis pub/sub
// channels, so connected clients learn about them without polling.
package redis

import (
	"context"
	"encoding/json"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"

	"github.com/redis/go-redis/v9"
)

// DefaultChannelPrefix is used when no prefix is configured.
const DefaultChannelPrefix = "fastfeet:notifications:"

// Message is the JSON payload published for a notification.
type Message struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// NotificationPublisher publishes to "<prefix><recipientID>".
type NotificationPublisher struct {
	client *redis.Client
	prefix string
}

func NewNotificationPublisher(client *redis.Client, prefix string) *NotificationPublisher {
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}
	return &NotificationPublisher{client: client, prefix: prefix}
}

// Channel returns the channel a recipient's notifications are published on.
func (p *NotificationPublisher) Channel(recipientID kernel.UUID) string {
	return p.prefix + recipientID.String()
}

func (p *NotificationPublisher) Publish(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(Message{
		ID:          n.ID().String(),
		RecipientID: n.RecipientID().String(),
		Title:       n.Title(),
		Content:     n.Content(),
		CreatedAt:   n.CreatedAt(),
	})
	if err != nil {
		return err
	}

	return p.client.Publish(ctx, p.Channel(n.RecipientID()), payload).Err()
}

// NoopNotificationPublisher drops every notification. It is used when Redis
// is not configured.
type NoopNotificationPublisher struct{}

func (NoopNotificationPublisher) Publish(context.Context, *notification.Notification) error {
	return nil
}
