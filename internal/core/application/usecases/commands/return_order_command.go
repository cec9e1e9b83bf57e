package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/pkg/guard"
)

var ErrReturnOrderCommandIsNotConstructed = errors.New(
	"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
)

type ReturnOrderCommand struct {
	orderID kernel.UUID
	caller  user.Caller

	guard guard.ConstructorGuard
}

func NewReturnOrderCommand(orderID kernel.UUID, caller user.Caller) (ReturnOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), caller.Validate()); err != nil {
		return ReturnOrderCommand{}, err
	}

	return ReturnOrderCommand{
		orderID: orderID,
		caller:  caller,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

func (c ReturnOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c ReturnOrderCommand) Caller() user.Caller  { return c.caller }
