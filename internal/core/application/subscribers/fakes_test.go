package subscribers_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/eventbus"
)

// memoryStore is an in-memory stand-in for the database shared by every
// unit of work it creates. Orders are kept by pointer so tests can inspect the
// aggregate the handlers mutated.
type memoryStore struct {
	mu            sync.Mutex
	orders        map[kernel.UUID]*order.Order
	recipients    map[kernel.UUID]*recipient.Recipient
	users         map[kernel.UUID]*user.User
	notifications []*notification.Notification

	dispatcher *eventbus.Dispatcher
}

func newMemoryStore(dispatcher *eventbus.Dispatcher) *memoryStore {
	return &memoryStore{
		orders:     make(map[kernel.UUID]*order.Order),
		recipients: make(map[kernel.UUID]*recipient.Recipient),
		users:      make(map[kernel.UUID]*user.User),
		dispatcher: dispatcher,
	}
}

func (s *memoryStore) notificationsFor(recipientID kernel.UUID) []*notification.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*notification.Notification
	for _, n := range s.notifications {
		if n.RecipientID().IsEqual(recipientID) {
			result = append(result, n)
		}
	}
	return result
}

// memoryUoW dispatches the events of saved orders on Commit.
type memoryUoW struct {
	store   *memoryStore
	open    bool
	tracked []*order.Order
}

func (u *memoryUoW) Begin(context.Context) error {
	u.open = true
	return nil
}

func (u *memoryUoW) Commit(ctx context.Context) error {
	if !u.open {
		return errors.New("no transaction")
	}
	u.open = false
	tracked := u.tracked
	u.tracked = nil
	for _, o := range tracked {
		_ = u.store.dispatcher.Dispatch(ctx, o)
	}
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	if !u.open {
		return errors.New("no transaction")
	}
	u.open = false
	u.tracked = nil
	return nil
}

func (u *memoryUoW) OrderRepository() ports.OrderRepository         { return memoryOrders{u} }
func (u *memoryUoW) RecipientRepository() ports.RecipientRepository { return memoryRecipients{u.store} }
func (u *memoryUoW) UserRepository() ports.UserRepository           { return memoryUsers{u.store} }
func (u *memoryUoW) NotificationRepository() ports.NotificationRepository {
	return memoryNotifications{u.store}
}

type memoryOrderFactory struct{ store *memoryStore }

func (f memoryOrderFactory) Create() commands.OrderUoW { return &memoryUoW{store: f.store} }

type memoryNotificationFactory struct{ store *memoryStore }

func (f memoryNotificationFactory) Create() commands.NotificationUoW {
	return &memoryUoW{store: f.store}
}

type memoryOrders struct{ uow *memoryUoW }

func (r memoryOrders) save(o *order.Order) {
	r.uow.store.mu.Lock()
	r.uow.store.orders[o.ID()] = o
	r.uow.store.mu.Unlock()

	if r.uow.open {
		r.uow.tracked = append(r.uow.tracked, o)
		return
	}
	_ = r.uow.store.dispatcher.Dispatch(context.Background(), o)
}

func (r memoryOrders) Add(_ context.Context, o *order.Order) error {
	r.save(o)
	return nil
}

func (r memoryOrders) Update(_ context.Context, o *order.Order) error {
	r.save(o)
	return nil
}

func (r memoryOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.uow.store.mu.Lock()
	defer r.uow.store.mu.Unlock()

	o, ok := r.uow.store.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

func (r memoryOrders) Delete(_ context.Context, o *order.Order) error {
	r.uow.store.mu.Lock()
	defer r.uow.store.mu.Unlock()

	delete(r.uow.store.orders, o.ID())
	return nil
}

type memoryRecipients struct{ store *memoryStore }

func (r memoryRecipients) Add(_ context.Context, rec *recipient.Recipient) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.recipients[rec.ID()] = rec
	return nil
}

func (r memoryRecipients) Get(_ context.Context, id kernel.UUID) (*recipient.Recipient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.recipients[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("recipient", id.String())
	}
	return rec, nil
}

type memoryUsers struct{ store *memoryStore }

func (r memoryUsers) Add(_ context.Context, u *user.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.users[u.ID()] = u
	return nil
}

func (r memoryUsers) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id.String())
	}
	return u, nil
}

type memoryNotifications struct{ store *memoryStore }

func (r memoryNotifications) Add(_ context.Context, n *notification.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.notifications = append(r.store.notifications, n)
	return nil
}

func (r memoryNotifications) Update(context.Context, *notification.Notification) error { return nil }

func (r memoryNotifications) Get(_ context.Context, id kernel.UUID) (*notification.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, n := range r.store.notifications {
		if n.ID().IsEqual(id) {
			return n, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("notification", id.String())
}

func (r memoryNotifications) DeleteReadBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, *notification.Notification) error { return nil }

// stubSender records the commands it receives and fails with err when set.
type stubSender struct {
	sent []commands.SendNotificationCommand
	err  error
}

func (s *stubSender) Handle(_ context.Context, cmd commands.SendNotificationCommand) (*notification.Notification, error) {
	s.sent = append(s.sent, cmd)
	if s.err != nil {
		return nil, s.err
	}
	return notification.NewNotification(kernel.NewUUID(), cmd.RecipientID(), cmd.Title(), cmd.Content())
}

type failingOrders struct{ err error }

func (f failingOrders) Get(context.Context, kernel.UUID) (*order.Order, error) { return nil, f.err }
