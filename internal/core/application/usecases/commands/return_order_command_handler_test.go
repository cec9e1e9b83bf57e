package commands_test

import (
	"testing"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReturnOrderCommandHandler_Handle(t *testing.T) {
	ctx := testContext(t)
	deliverymanID := kernel.NewUUID()

	allowed := []struct {
		name   string
		status order.Status
		caller user.Caller
	}{
		{"admin returns pending order", order.Pending, mustCaller(kernel.NewUUID(), user.RoleAdmin)},
		{"admin returns picked up order", order.PickedUp, mustCaller(kernel.NewUUID(), user.RoleAdmin)},
		{"assigned deliveryman returns picked up order", order.PickedUp, mustCaller(deliverymanID, user.RoleDeliveryman)},
	}

	for _, tt := range allowed {
		t.Run("should allow "+tt.name, func(t *testing.T) {
			o := orderInStatus(tt.status, &deliverymanID)
			cmd, _ := commands.NewReturnOrderCommand(o.ID(), tt.caller)

			uow, factory := newMockOrderUoW()
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
				uow.orders.On("Update", ctx, o).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			require.NoError(t, commands.NewReturnOrderCommandHandler(factory).Handle(ctx, cmd))

			assert.Equal(t, order.Returned, o.Status())
			events := o.PullDomainEvents()
			require.Len(t, events, 1)
			assert.Equal(t, order.ReturnedKind, events[0].Kind())
		})
	}

	rejected := []struct {
		name   string
		status order.Status
		caller user.Caller
	}{
		{"another deliveryman", order.PickedUp, mustCaller(kernel.NewUUID(), user.RoleDeliveryman)},
		{"a delivered order", order.Delivered, mustCaller(kernel.NewUUID(), user.RoleAdmin)},
		{"a returned order", order.Returned, mustCaller(deliverymanID, user.RoleDeliveryman)},
	}

	for _, tt := range rejected {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			o := orderInStatus(tt.status, &deliverymanID)
			cmd, _ := commands.NewReturnOrderCommand(o.ID(), tt.caller)

			uow, factory := newMockOrderUoW()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			err := commands.NewReturnOrderCommandHandler(factory).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrOperationNotAllowed)
			assert.Equal(t, tt.status, o.Status())
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}
