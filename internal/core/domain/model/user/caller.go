package user

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrCallerIsNotConstructed = errors.New("Caller must be created via NewCaller constructor")

// Caller identifies who performs a use case: an opaque user id and a role.
// How the pair was authenticated is outside the domain.
type Caller struct {
	userID kernel.UUID
	role   Role

	guard guard.ConstructorGuard
}

func NewCaller(userID kernel.UUID, role Role) (Caller, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return Caller{}, err
	}

	return Caller{
		userID: userID,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c Caller) Validate() error {
	return c.guard.Validate(ErrCallerIsNotConstructed)
}

func (c Caller) UserID() kernel.UUID { return c.userID }
func (c Caller) Role() Role          { return c.role }
func (c Caller) IsAdmin() bool       { return c.role == RoleAdmin }

// Is reports whether the caller is the user with the given id.
func (c Caller) Is(userID *kernel.UUID) bool {
	return userID != nil && c.userID.IsEqual(*userID)
}
