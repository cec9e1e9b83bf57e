// Package postgres provides the GORM-based Unit of Work of fastfeet.
//
// The unit of work owns the transaction shared by the repositories it hands
// out and the list of aggregates they saved. Domain events recorded on those
// aggregates are dispatched only after the transaction commits:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err // rollback: nothing is dispatched
//	}
//
//	return uow.Commit(ctx) // commit, then dispatch o's events
//
// When the commit fails, or the unit of work is rolled back, the events stay
// queued on the aggregate instances. A later successful save of the same
// instance still carries them.
//
// A repository used without Begin writes straight to the database; the write
// is durable at once, so the aggregate's events are dispatched immediately.
package postgres

import (
	"context"
	"log/slog"

	"fastfeet/internal/adapters/out/postgres/attachmentrepo"
	"fastfeet/internal/adapters/out/postgres/notificationrepo"
	"fastfeet/internal/adapters/out/postgres/orderrepo"
	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/adapters/out/postgres/userrepo"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/ports"

	"gorm.io/gorm"
)

// EventDispatcher delivers the pending events of an aggregate.
type EventDispatcher interface {
	Dispatch(ctx context.Context, source kernel.EventSource) error
}

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate kernel.EventSource
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool and one dispatcher.
type GormUnitOfWorkFactory struct {
	db         *gorm.DB
	dispatcher EventDispatcher
	logger     *slog.Logger
}

func NewGormUnitOfWorkFactory(db *gorm.DB, dispatcher EventDispatcher, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:         db,
		dispatcher: dispatcher,
		logger:     logger.With("component", "unit_of_work"),
	}
}

// Create produces a new UnitOfWork instance with its own transaction state and
// tracking list.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.create()
}

func (f *GormUnitOfWorkFactory) create() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		dispatcher:        f.dispatcher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and the dispatch of the
// events of every aggregate saved within it. Not safe for concurrent use.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	dispatcher        EventDispatcher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit commits the transaction and then dispatches the events of every
// tracked aggregate in the order they were tracked.
//
// Returns gorm.ErrInvalidTransaction if no transaction is open, or the commit
// error; in both cases nothing is dispatched. Handler failures are logged and
// never turn a successful commit into an error.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil

	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if err != nil {
		return err
	}

	for _, t := range tracked {
		uow.dispatch(ctx, t)
	}
	return nil
}

// Rollback discards the transaction and forgets the tracked aggregates without
// dispatching their events.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.trackedAggregates = make([]trackedAggregate, 0)

	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// TrackAggregate registers an aggregate saved through one of the repositories.
// Outside a transaction the save is already durable and the events are
// dispatched right away.
func (uow *GormUnitOfWork) TrackAggregate(ctx context.Context, id kernel.UUID, aggregate kernel.EventSource) {
	t := trackedAggregate{ID: id, Aggregate: aggregate}
	if uow.tx == nil {
		uow.dispatch(ctx, t)
		return
	}
	uow.trackedAggregates = append(uow.trackedAggregates, t)
}

func (uow *GormUnitOfWork) dispatch(ctx context.Context, t trackedAggregate) {
	if err := uow.dispatcher.Dispatch(ctx, t.Aggregate); err != nil {
		uow.logger.ErrorContext(ctx, "domain event handlers failed",
			slog.String("aggregate_id", t.ID.String()),
			slog.Any("error", err))
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the pool when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.conn()
	return orderrepo.NewGormOrderRepository(db, attachmentrepo.NewGormOrderAttachmentRepository(db), uow)
}

func (uow *GormUnitOfWork) OrderAttachmentRepository() ports.OrderAttachmentRepository {
	return attachmentrepo.NewGormOrderAttachmentRepository(uow.conn())
}

func (uow *GormUnitOfWork) RecipientRepository() ports.RecipientRepository {
	return recipientrepo.NewGormRecipientRepository(uow.conn())
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn())
}
