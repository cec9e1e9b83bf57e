// Package attachmentrepo persists the links between orders and their
// uploaded attachments.
package attachmentrepo

import (
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderAttachmentDTO is one row of order_attachments. The composite primary
// key makes inserting the same link twice a conflict rather than a duplicate.
type OrderAttachmentDTO struct {
	OrderID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	AttachmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (OrderAttachmentDTO) TableName() string {
	return "order_attachments"
}

func fromDomain(a order.OrderAttachment) OrderAttachmentDTO {
	return OrderAttachmentDTO{
		OrderID:      a.OrderID().Bytes(),
		AttachmentID: a.AttachmentID().Bytes(),
	}
}

func toDomain(dto OrderAttachmentDTO) (order.OrderAttachment, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.OrderAttachment{}, err
	}
	attachmentID, err := kernel.UUIDFromBytes(dto.AttachmentID[:])
	if err != nil {
		return order.OrderAttachment{}, err
	}
	return order.NewOrderAttachment(orderID, attachmentID)
}
