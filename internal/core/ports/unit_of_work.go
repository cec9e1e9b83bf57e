package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
//
// Aggregates saved through its repositories are tracked; their domain events
// are dispatched after Commit succeeds and dropped from tracking on Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	OrderAttachmentRepository() OrderAttachmentRepository
	RecipientRepository() RecipientRepository
	UserRepository() UserRepository
	NotificationRepository() NotificationRepository
}
