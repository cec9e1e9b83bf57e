package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrDeliverOrderCommandIsNotConstructed = errors.New(
		"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
	)
	ErrAttachmentsAreRequired = errors.New("at least one attachment is required to deliver an order")
)

// DeliverOrderCommand is issued by the assigned deliveryman with the ids of the
// uploaded delivery photos.
type DeliverOrderCommand struct {
	orderID       kernel.UUID
	caller        user.Caller
	attachmentIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeliverOrderCommand(orderID kernel.UUID, caller user.Caller, attachmentIDs []kernel.UUID) (DeliverOrderCommand, error) {
	errList := []error{orderID.Validate(), caller.Validate()}
	if len(attachmentIDs) == 0 {
		errList = append(errList, ErrAttachmentsAreRequired)
	}
	for _, id := range attachmentIDs {
		errList = append(errList, id.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return DeliverOrderCommand{}, err
	}

	ids := make([]kernel.UUID, len(attachmentIDs))
	copy(ids, attachmentIDs)

	return DeliverOrderCommand{
		orderID:       orderID,
		caller:        caller,
		attachmentIDs: ids,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

func (c DeliverOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c DeliverOrderCommand) Caller() user.Caller  { return c.caller }

// AttachmentIDs returns a copy of the attachment ids.
func (c DeliverOrderCommand) AttachmentIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.attachmentIDs))
	copy(ids, c.attachmentIDs)
	return ids
}
