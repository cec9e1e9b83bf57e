package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrReadNotificationCommandIsNotConstructed = errors.New(
	"ReadNotificationCommand must be created via NewReadNotificationCommand constructor",
)

type ReadNotificationCommand struct {
	notificationID kernel.UUID
	recipientID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewReadNotificationCommand(notificationID, recipientID kernel.UUID) (ReadNotificationCommand, error) {
	if err := errors.Join(notificationID.Validate(), recipientID.Validate()); err != nil {
		return ReadNotificationCommand{}, err
	}

	return ReadNotificationCommand{
		notificationID: notificationID,
		recipientID:    recipientID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c ReadNotificationCommand) Validate() error {
	return c.guard.Validate(ErrReadNotificationCommandIsNotConstructed)
}

func (c ReadNotificationCommand) NotificationID() kernel.UUID { return c.notificationID }
func (c ReadNotificationCommand) RecipientID() kernel.UUID    { return c.recipientID }
