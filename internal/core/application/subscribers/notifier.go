// Package subscribers turns order events into recipient notifications.
//
// Each subscriber handles exactly one event kind. The composition root builds
// them and calls Subscribe once per subscriber with the shared dispatcher.
// Events are delivered after the triggering transaction commits, so the order
// read back here reflects the committed state.
package subscribers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/eventbus"
)

type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

type RecipientReader interface {
	Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error)
}

type NotificationSender interface {
	Handle(ctx context.Context, cmd commands.SendNotificationCommand) (*notification.Notification, error)
}

// message renders the notification sent for an order.
type message func(o *order.Order, r *recipient.Recipient) (title, content string)

// notifier holds what every subscriber shares; only the event kind and the
// message differ between them.
type notifier struct {
	kind       kernel.EventKind
	message    message
	orders     OrderReader
	recipients RecipientReader
	sender     NotificationSender
	logger     *slog.Logger
}

func newNotifier(
	kind kernel.EventKind,
	msg message,
	orders OrderReader,
	recipients RecipientReader,
	sender NotificationSender,
	logger *slog.Logger,
) notifier {
	return notifier{
		kind:       kind,
		message:    msg,
		orders:     orders,
		recipients: recipients,
		sender:     sender,
		logger:     logger.With("component", "subscriber", "event_kind", kind.String()),
	}
}

// Subscribe registers the subscriber for its event kind.
func (n notifier) Subscribe(d *eventbus.Dispatcher) {
	d.Subscribe(n.kind, eventbus.HandlerFunc(n.handle))
}

// Kind returns the event kind the subscriber handles.
func (n notifier) Kind() kernel.EventKind {
	return n.kind
}

// handle never returns an error: a missing order or recipient, or a failed
// send, is logged and the event is considered handled.
func (n notifier) handle(ctx context.Context, event kernel.DomainEvent) error {
	log := n.logger.With(slog.String("order_id", event.AggregateID().String()))

	o, err := n.orders.Get(ctx, event.AggregateID())
	if err != nil {
		n.logLookup(ctx, log, "order", err)
		return nil
	}

	r, err := n.recipients.Get(ctx, o.RecipientID())
	if err != nil {
		n.logLookup(ctx, log.With(slog.String("recipient_id", o.RecipientID().String())), "recipient", err)
		return nil
	}

	title, content := n.message(o, r)
	cmd, err := commands.NewSendNotificationCommand(r.ID(), title, content)
	if err != nil {
		log.ErrorContext(ctx, "failed to build notification", slog.Any("error", err))
		return nil
	}

	sent, err := n.sender.Handle(ctx, cmd)
	if err != nil {
		log.ErrorContext(ctx, "failed to send notification",
			slog.String("recipient_id", r.ID().String()),
			slog.Any("error", err))
		return nil
	}

	log.DebugContext(ctx, "notification sent",
		slog.String("recipient_id", r.ID().String()),
		slog.String("notification_id", sent.ID().String()))
	return nil
}

func (n notifier) logLookup(ctx context.Context, log *slog.Logger, what string, err error) {
	if errors.Is(err, errs.ErrObjectNotFound) {
		log.WarnContext(ctx, what+" not found, skipping notification")
		return
	}
	log.ErrorContext(ctx, fmt.Sprintf("failed to load %s", what), slog.Any("error", err))
}
