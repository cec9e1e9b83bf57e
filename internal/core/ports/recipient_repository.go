package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/core/domain/model/user"
)

type RecipientRepository interface {
	Add(ctx context.Context, r *recipient.Recipient) error
	// Get returns errs.ErrObjectNotFound if there is no such recipient.
	Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error)
}

type UserRepository interface {
	Add(ctx context.Context, u *user.User) error
	// Get returns errs.ErrObjectNotFound if there is no such user.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
