package commands

import (
	"context"
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/pkg/errs"
)

// ReadNotificationCommandHandler marks a notification as read on behalf of the
// recipient it was sent to.
type ReadNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewReadNotificationCommandHandler(uowFactory NotificationUoWFactory) ReadNotificationCommandHandler {
	return ReadNotificationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReadNotificationCommandHandler) Handle(ctx context.Context, cmd ReadNotificationCommand) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	n, err := repo.Get(ctx, cmd.NotificationID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}

	if !n.RecipientID().IsEqual(cmd.RecipientID()) {
		return nil, errs.NewNotAllowedErrorWithCause("read notification",
			errors.New("notification belongs to another recipient"))
	}

	if n.IsRead() {
		return n, nil
	}

	n.Read(time.Now().UTC())
	if err = repo.Update(ctx, n); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return n, nil
}
