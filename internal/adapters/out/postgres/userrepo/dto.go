// Package userrepo persists administrators and deliverymen.
package userrepo

import (
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null"`
	Role string    `gorm:"type:varchar(16);index;not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:   u.ID().Bytes(),
		Name: u.Name(),
		Role: u.Role().String(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(id, dto.Name, role)
}
