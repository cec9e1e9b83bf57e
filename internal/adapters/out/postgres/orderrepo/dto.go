// Package orderrepo persists the Order aggregate: one row in orders plus its
// attachment links, which are written as deltas on update.
package orderrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is one row of orders. Status is stored by name.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	DeliverymanID *uuid.UUID `gorm:"type:uuid;index"`
	Status        string     `gorm:"type:varchar(16);index;not null"`
	CreatedAt     time.Time  `gorm:"autoCreateTime:false;not null"`
	UpdatedAt     *time.Time `gorm:"autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var deliverymanID *uuid.UUID
	if id := o.DeliverymanID(); id != nil {
		raw := id.Bytes()
		deliverymanID = &raw
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		RecipientID:   o.RecipientID().Bytes(),
		DeliverymanID: deliverymanID,
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

// toDomain rebuilds the aggregate with the persisted links as the attachment
// baseline. No event is recorded.
func toDomain(dto OrderDTO, attachments []order.OrderAttachment) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	var deliverymanID *kernel.UUID
	if dto.DeliverymanID != nil {
		dID, dErr := kernel.UUIDFromBytes((*dto.DeliverymanID)[:])
		if dErr != nil {
			return nil, dErr
		}
		deliverymanID = &dID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var updatedAt *time.Time
	if dto.UpdatedAt != nil {
		t := dto.UpdatedAt.UTC()
		updatedAt = &t
	}

	return order.RestoreOrder(id, recipientID, deliverymanID, status, attachments, dto.CreatedAt.UTC(), updatedAt)
}
