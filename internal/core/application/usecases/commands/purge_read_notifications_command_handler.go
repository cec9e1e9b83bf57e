package commands

import (
	"context"
	"time"
)

type PurgeReadNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	now        func() time.Time
}

func NewPurgeReadNotificationsCommandHandler(uowFactory NotificationUoWFactory) PurgeReadNotificationsCommandHandler {
	return PurgeReadNotificationsCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the number of removed notifications.
func (h PurgeReadNotificationsCommandHandler) Handle(ctx context.Context, cmd PurgeReadNotificationsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	before := h.now().UTC().Add(-cmd.Retention())
	removed, err := uow.NotificationRepository().DeleteReadBefore(ctx, before)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
