// Package commands contains the fastfeet use cases that modify state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load, guard, mutate, save and commit. Domain events recorded on the
// way are dispatched by the unit of work after the commit.
package commands

import (
	"context"

	"fastfeet/internal/core/ports"
)

// Unit of Work interfaces segregated by the repositories each handler needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RecipientRepoFactory interface {
		RecipientRepository() ports.RecipientRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW manages transactions for the order lifecycle use cases, which
	// also read recipients and deliverymen.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   // ... guard and mutate
	//   err = uow.OrderRepository().Update(ctx, o)
	//
	//   err = uow.Commit(ctx) // dispatches the order's events
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		RecipientRepoFactory
		UserRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RecipientUoW manages transactions for recipient-only operations.
	RecipientUoW interface {
		TxManager
		RecipientRepoFactory
	}

	RecipientUoWFactory interface {
		Create() RecipientUoW
	}

	// NotificationUoW manages transactions for notification-only operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
