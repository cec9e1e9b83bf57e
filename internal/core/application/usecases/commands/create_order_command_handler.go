package commands

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"
)

// CreateOrderCommandHandler creates pending orders. The OrderCreated event the
// new order records is dispatched when the unit of work commits.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the recipient exists and persists the new order.
// Returns ErrRecipientNotFound for an unknown recipient.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.RecipientRepository().Get(ctx, cmd.RecipientID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRecipientNotFound
	}
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.RecipientID())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
