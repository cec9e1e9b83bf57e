package subscribers

import (
	"fmt"
	"log/slog"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/recipient"
)

// OnOrderCreated tells the recipient that an order was registered for them.
type OnOrderCreated struct{ notifier }

func NewOnOrderCreated(
	orders OrderReader,
	recipients RecipientReader,
	sender NotificationSender,
	logger *slog.Logger,
) OnOrderCreated {
	return OnOrderCreated{newNotifier(order.CreatedKind, func(o *order.Order, _ *recipient.Recipient) (string, string) {
		return fmt.Sprintf("Order %s created", o.ID()),
			"Your order is registered and waiting to be picked up."
	}, orders, recipients, sender, logger)}
}

// OnOrderPickedUp tells the recipient that a deliveryman is on the way.
type OnOrderPickedUp struct{ notifier }

func NewOnOrderPickedUp(
	orders OrderReader,
	recipients RecipientReader,
	sender NotificationSender,
	logger *slog.Logger,
) OnOrderPickedUp {
	return OnOrderPickedUp{newNotifier(order.PickedUpKind, func(o *order.Order, r *recipient.Recipient) (string, string) {
		return fmt.Sprintf("Order %s picked up", o.ID()),
			fmt.Sprintf("Your order is on its way to %s.", r.Address())
	}, orders, recipients, sender, logger)}
}

type OnOrderDelivered struct{ notifier }

func NewOnOrderDelivered(
	orders OrderReader,
	recipients RecipientReader,
	sender NotificationSender,
	logger *slog.Logger,
) OnOrderDelivered {
	return OnOrderDelivered{newNotifier(order.DeliveredKind, func(o *order.Order, r *recipient.Recipient) (string, string) {
		return fmt.Sprintf("Order %s delivered", o.ID()),
			fmt.Sprintf("Your order was delivered at %s.", r.Address())
	}, orders, recipients, sender, logger)}
}

type OnOrderReturned struct{ notifier }

func NewOnOrderReturned(
	orders OrderReader,
	recipients RecipientReader,
	sender NotificationSender,
	logger *slog.Logger,
) OnOrderReturned {
	return OnOrderReturned{newNotifier(order.ReturnedKind, func(o *order.Order, _ *recipient.Recipient) (string, string) {
		return fmt.Sprintf("Order %s returned", o.ID()),
			"Your order was returned. Contact us to arrange a new delivery."
	}, orders, recipients, sender, logger)}
}
