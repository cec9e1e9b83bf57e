package commands_test

import (
	"context"
	"time"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockRecipientRepository struct{ mock.Mock }

func (m *MockRecipientRepository) Add(ctx context.Context, r *recipient.Recipient) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipientRepository) Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipient.Recipient), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) Publish(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct {
	MockTx
	orders     *MockOrderRepository
	recipients *MockRecipientRepository
	users      *MockUserRepository
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository         { return m.orders }
func (m *MockOrderUoW) RecipientRepository() ports.RecipientRepository { return m.recipients }
func (m *MockOrderUoW) UserRepository() ports.UserRepository           { return m.users }

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func newMockOrderUoW() (*MockOrderUoW, *MockOrderUoWFactory) {
	uow := &MockOrderUoW{
		orders:     new(MockOrderRepository),
		recipients: new(MockRecipientRepository),
		users:      new(MockUserRepository),
	}
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	return uow, factory
}

type MockRecipientUoW struct {
	MockTx
	recipients *MockRecipientRepository
}

func (m *MockRecipientUoW) RecipientRepository() ports.RecipientRepository { return m.recipients }

type MockRecipientUoWFactory struct{ mock.Mock }

func (m *MockRecipientUoWFactory) Create() commands.RecipientUoW {
	args := m.Called()
	return args.Get(0).(commands.RecipientUoW)
}

type MockNotificationUoW struct {
	MockTx
	notifications *MockNotificationRepository
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	return m.notifications
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

func newMockNotificationUoW() (*MockNotificationUoW, *MockNotificationUoWFactory) {
	uow := &MockNotificationUoW{notifications: new(MockNotificationRepository)}
	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow)
	return uow, factory
}

func mustCaller(id kernel.UUID, role user.Role) user.Caller {
	c, err := user.NewCaller(id, role)
	if err != nil {
		panic(err)
	}
	return c
}

func orderInStatus(status order.Status, deliverymanID *kernel.UUID) *order.Order {
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), deliverymanID, status, nil, time.Now().UTC(), nil)
	if err != nil {
		panic(err)
	}
	return o
}
