// Package notification models the messages sent to recipients when their
// orders move through the lifecycle.
package notification

import (
	"errors"
	"strings"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Notification is created as a side effect of order events and is immutable
// afterwards, except for the read marker.
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	title       string
	content     string
	createdAt   time.Time
	readAt      *time.Time

	isConstructed bool
}

func NewNotification(id, recipientID kernel.UUID, title, content string) (*Notification, error) {
	return RestoreNotification(id, recipientID, title, content, time.Now().UTC(), nil)
}

// RestoreNotification rebuilds a notification from persisted state.
func RestoreNotification(
	id, recipientID kernel.UUID,
	title, content string,
	createdAt time.Time,
	readAt *time.Time,
) (*Notification, error) {
	n := &Notification{
		createdAt:     createdAt,
		readAt:        readAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setRecipientID(recipientID),
		n.setTitle(title),
	); err != nil {
		return nil, err
	}

	n.content = content
	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID          { return n.id }
func (n *Notification) RecipientID() kernel.UUID { return n.recipientID }
func (n *Notification) Title() string            { return n.title }
func (n *Notification) Content() string          { return n.content }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }
func (n *Notification) ReadAt() *time.Time       { return n.readAt }
func (n *Notification) IsRead() bool             { return n.readAt != nil }

// Read marks the notification as read at now. Reading twice keeps the first time.
func (n *Notification) Read(now time.Time) {
	if n.readAt != nil {
		return
	}
	n.readAt = &now
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	n.recipientID = recipientID
	return nil
}

func (n *Notification) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}
