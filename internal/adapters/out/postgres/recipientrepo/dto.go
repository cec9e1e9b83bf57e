// Package recipientrepo persists recipients.
package recipientrepo

import (
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"

	"github.com/google/uuid"
)

type RecipientDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name     string      `gorm:"not null"`
	Address  string      `gorm:"not null"`
	Location LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
}

func (RecipientDTO) TableName() string {
	return "recipients"
}

// LocationDTO stores the recipient's coordinates in degrees.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

func fromDomain(r *recipient.Recipient) RecipientDTO {
	return RecipientDTO{
		ID:      r.ID().Bytes(),
		Name:    r.Name(),
		Address: r.Address(),
		Location: LocationDTO{
			Latitude:  r.Location().Latitude(),
			Longitude: r.Location().Longitude(),
		},
	}
}

func toDomain(dto RecipientDTO) (*recipient.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return recipient.RestoreRecipient(id, dto.Name, dto.Address, location)
}
