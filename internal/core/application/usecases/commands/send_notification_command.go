package commands

import (
	"errors"
	"strings"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrSendNotificationCommandIsNotConstructed = errors.New(
		"SendNotificationCommand must be created via NewSendNotificationCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
)

type SendNotificationCommand struct {
	recipientID kernel.UUID
	title       string
	content     string

	guard guard.ConstructorGuard
}

func NewSendNotificationCommand(recipientID kernel.UUID, title, content string) (SendNotificationCommand, error) {
	var titleErr error
	if strings.TrimSpace(title) == "" {
		titleErr = ErrTitleIsRequired
	}
	if err := errors.Join(recipientID.Validate(), titleErr); err != nil {
		return SendNotificationCommand{}, err
	}

	return SendNotificationCommand{
		recipientID: recipientID,
		title:       title,
		content:     content,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SendNotificationCommand) Validate() error {
	return c.guard.Validate(ErrSendNotificationCommandIsNotConstructed)
}

func (c SendNotificationCommand) RecipientID() kernel.UUID { return c.recipientID }
func (c SendNotificationCommand) Title() string            { return c.title }
func (c SendNotificationCommand) Content() string          { return c.content }
