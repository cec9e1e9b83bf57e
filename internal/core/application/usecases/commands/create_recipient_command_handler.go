package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/recipient"
)

type CreateRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

func NewCreateRecipientCommandHandler(uowFactory RecipientUoWFactory) CreateRecipientCommandHandler {
	return CreateRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateRecipientCommandHandler) Handle(ctx context.Context, cmd CreateRecipientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r, err := recipient.NewRecipient(cmd.RecipientID(), cmd.Name(), cmd.Address(), cmd.Location())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RecipientRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
