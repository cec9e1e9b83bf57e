package postgres

import (
	"fastfeet/internal/adapters/out/postgres/attachmentrepo"
	"fastfeet/internal/adapters/out/postgres/notificationrepo"
	"fastfeet/internal/adapters/out/postgres/orderrepo"
	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every fastfeet table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&recipientrepo.RecipientDTO{},
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&attachmentrepo.OrderAttachmentDTO{},
		&notificationrepo.NotificationDTO{},
	)
}
