package queries

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrGetRecipientNotificationsQueryIsNotConstructed = errors.New(
	"GetRecipientNotificationsQuery must be created via NewGetRecipientNotificationsQuery constructor",
)

// GetRecipientNotificationsQuery lists a recipient's notifications, newest first.
type GetRecipientNotificationsQuery struct {
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRecipientNotificationsQuery(recipientID kernel.UUID) (GetRecipientNotificationsQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return GetRecipientNotificationsQuery{}, err
	}

	return GetRecipientNotificationsQuery{
		recipientID: recipientID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetRecipientNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetRecipientNotificationsQueryIsNotConstructed)
}

func (q GetRecipientNotificationsQuery) RecipientID() kernel.UUID { return q.recipientID }

type GetRecipientNotificationsQueryResponse struct {
	ID        kernel.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	ReadAt    *time.Time
}
