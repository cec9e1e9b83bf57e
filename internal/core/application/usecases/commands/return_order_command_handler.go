package commands

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"
)

// ReturnOrderCommandHandler sends a pending or picked up order back. Allowed
// for administrators and for the deliveryman holding the order.
type ReturnOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewReturnOrderCommandHandler(uowFactory OrderUoWFactory) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := loadOrder(ctx, orderRepo, cmd.OrderID())
	if err != nil {
		return err
	}

	caller := cmd.Caller()
	if !caller.IsAdmin() && !caller.Is(o.DeliverymanID()) {
		return errs.NewNotAllowedErrorWithCause("return order",
			errors.New("only an admin or the assigned deliveryman can return the order"))
	}

	if err = guardTransition("return order", o, order.Returned); err != nil {
		return err
	}

	if err = o.SetStatus(order.Returned); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
