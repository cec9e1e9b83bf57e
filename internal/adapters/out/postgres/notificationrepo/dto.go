// Package notificationrepo persists the notifications sent to recipients.
package notificationrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID  `gorm:"type:uuid;index;not null"`
	Title       string     `gorm:"not null"`
	Content     string     `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"autoCreateTime:false;index;not null"`
	ReadAt      *time.Time `gorm:"index"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID().Bytes(),
		RecipientID: n.RecipientID().Bytes(),
		Title:       n.Title(),
		Content:     n.Content(),
		CreatedAt:   n.CreatedAt(),
		ReadAt:      n.ReadAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	var readAt *time.Time
	if dto.ReadAt != nil {
		t := dto.ReadAt.UTC()
		readAt = &t
	}

	return notification.RestoreNotification(id, recipientID, dto.Title, dto.Content, dto.CreatedAt.UTC(), readAt)
}
