package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/pkg/guard"
)

var ErrPickUpOrderCommandIsNotConstructed = errors.New(
	"PickUpOrderCommand must be created via NewPickUpOrderCommand constructor",
)

// PickUpOrderCommand is issued by a deliveryman withdrawing a pending order.
type PickUpOrderCommand struct {
	orderID kernel.UUID
	caller  user.Caller

	guard guard.ConstructorGuard
}

func NewPickUpOrderCommand(orderID kernel.UUID, caller user.Caller) (PickUpOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), caller.Validate()); err != nil {
		return PickUpOrderCommand{}, err
	}

	return PickUpOrderCommand{
		orderID: orderID,
		caller:  caller,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c PickUpOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickUpOrderCommandIsNotConstructed)
}

func (c PickUpOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c PickUpOrderCommand) Caller() user.Caller  { return c.caller }
