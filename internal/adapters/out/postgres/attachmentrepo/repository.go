package attachmentrepo

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderAttachmentRepository implements OrderAttachmentRepository using GORM.
type GormOrderAttachmentRepository struct {
	db *gorm.DB
}

func NewGormOrderAttachmentRepository(db *gorm.DB) *GormOrderAttachmentRepository {
	return &GormOrderAttachmentRepository{db: db}
}

// CreateMany inserts the links, skipping the ones already stored.
func (r *GormOrderAttachmentRepository) CreateMany(ctx context.Context, attachments []order.OrderAttachment) error {
	if len(attachments) == 0 {
		return nil
	}

	dtos := make([]OrderAttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		dtos = append(dtos, fromDomain(a))
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dtos).Error
}

// DeleteMany removes the links by key. Missing links are ignored.
func (r *GormOrderAttachmentRepository) DeleteMany(ctx context.Context, attachments []order.OrderAttachment) error {
	if len(attachments) == 0 {
		return nil
	}

	keys := make([][]any, 0, len(attachments))
	for _, a := range attachments {
		keys = append(keys, []any{a.OrderID().Bytes(), a.AttachmentID().Bytes()})
	}

	return r.db.WithContext(ctx).
		Where("(order_id, attachment_id) IN ?", keys).
		Delete(&OrderAttachmentDTO{}).Error
}

func (r *GormOrderAttachmentRepository) GetManyByOrderID(ctx context.Context, orderID kernel.UUID) ([]order.OrderAttachment, error) {
	var dtos []OrderAttachmentDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("attachment_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	attachments := make([]order.OrderAttachment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}

// DeleteByOrderID removes every link of the order.
func (r *GormOrderAttachmentRepository) DeleteByOrderID(ctx context.Context, orderID kernel.UUID) error {
	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Delete(&OrderAttachmentDTO{}).Error
}
