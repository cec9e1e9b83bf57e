package commands

import (
	"context"
	"errors"
	"fmt"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/pkg/errs"
)

// PickUpOrderCommandHandler assigns a pending order to the calling deliveryman
// and moves it to picked_up, which records OrderPickedUp.
//
// Example:
//
//	handler := NewPickUpOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    // 404
//	case errors.Is(err, errs.ErrOperationNotAllowed):
//	    // wrong role or the order is not pending
//	}
type PickUpOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewPickUpOrderCommandHandler(uowFactory OrderUoWFactory) PickUpOrderCommandHandler {
	return PickUpOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h PickUpOrderCommandHandler) Handle(ctx context.Context, cmd PickUpOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	caller := cmd.Caller()
	if caller.Role() != user.RoleDeliveryman {
		return errs.NewNotAllowedErrorWithCause("pick up order", fmt.Errorf("role %s", caller.Role()))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryman, err := uow.UserRepository().Get(ctx, caller.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrDeliverymanNotFound
	}
	if err != nil {
		return err
	}
	if !deliveryman.IsDeliveryman() {
		return ErrDeliverymanNotFound
	}

	orderRepo := uow.OrderRepository()
	o, err := loadOrder(ctx, orderRepo, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = guardTransition("pick up order", o, order.PickedUp); err != nil {
		return err
	}

	if err = errors.Join(
		o.SetDeliveryman(deliveryman.ID()),
		o.SetStatus(order.PickedUp),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
