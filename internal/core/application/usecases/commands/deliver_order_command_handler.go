package commands

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"
)

// DeliverOrderCommandHandler replaces the attachment links of a picked up order
// with the delivery photos and moves it to delivered, which records a single
// OrderDelivered. The repository persists only the attachment delta.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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

	if !cmd.Caller().Is(o.DeliverymanID()) {
		return errs.NewNotAllowedErrorWithCause("deliver order",
			errors.New("only the deliveryman who picked the order up can deliver it"))
	}

	if err = guardTransition("deliver order", o, order.Delivered); err != nil {
		return err
	}

	if _, _, err = o.UpdateAttachments(cmd.AttachmentIDs()...); err != nil {
		return err
	}

	if err = o.SetStatus(order.Delivered); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
