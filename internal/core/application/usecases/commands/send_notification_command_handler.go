package commands

import (
	"context"
	"log/slog"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/ports"
)

// SendNotificationCommandHandler stores a notification for a recipient and
// pushes it to the recipient's live channel. A failed push is logged; the
// stored notification is still returned.
type SendNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

func NewSendNotificationCommandHandler(
	uowFactory NotificationUoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) SendNotificationCommandHandler {
	return SendNotificationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "send_notification"),
	}
}

func (h SendNotificationCommandHandler) Handle(ctx context.Context, cmd SendNotificationCommand) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	n, err := notification.NewNotification(kernel.NewUUID(), cmd.RecipientID(), cmd.Title(), cmd.Content())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.publisher.Publish(ctx, n); err != nil {
		h.logger.WarnContext(ctx, "failed to publish notification",
			slog.String("notification_id", n.ID().String()),
			slog.String("recipient_id", n.RecipientID().String()),
			slog.Any("error", err))
	}

	return n, nil
}
