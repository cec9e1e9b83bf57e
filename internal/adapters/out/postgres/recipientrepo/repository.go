package recipientrepo

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRecipientRepository implements RecipientRepository using GORM.
type GormRecipientRepository struct {
	db *gorm.DB
}

func NewGormRecipientRepository(db *gorm.DB) *GormRecipientRepository {
	return &GormRecipientRepository{db: db}
}

func (r *GormRecipientRepository) Add(ctx context.Context, rec *recipient.Recipient) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rec)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormRecipientRepository) Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecipientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipient", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
