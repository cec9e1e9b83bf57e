package commands

import "errors"

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrRecipientNotFound    = errors.New("recipient not found")
	ErrDeliverymanNotFound  = errors.New("deliveryman not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
