package queries

import (
	"context"
	"database/sql"
	"time"

	"fastfeet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetRecipientNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewGetRecipientNotificationsQueryHandler(db *gorm.DB) GetRecipientNotificationsQueryHandler {
	return GetRecipientNotificationsQueryHandler{db: db}
}

func (h GetRecipientNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetRecipientNotificationsQuery,
) ([]GetRecipientNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			content,
			created_at,
			read_at
		FROM notifications
		WHERE recipient_id = ?
		ORDER BY created_at DESC, id
	`, query.RecipientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]GetRecipientNotificationsQueryResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			resp      GetRecipientNotificationsQueryResponse
			createdAt time.Time
			readAt    sql.NullTime
		)
		if err = rows.Scan(&id, &resp.Title, &resp.Content, &createdAt, &readAt); err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt.UTC()
		if readAt.Valid {
			t := readAt.Time.UTC()
			resp.ReadAt = &t
		}

		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
