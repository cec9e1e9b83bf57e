package orderrepo

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db          *gorm.DB
	attachments attachmentStore
	tracker     aggregateTracker
}

// aggregateTracker receives every aggregate this repository saved.
type aggregateTracker interface {
	TrackAggregate(ctx context.Context, id kernel.UUID, aggregate kernel.EventSource)
}

type attachmentStore interface {
	CreateMany(ctx context.Context, attachments []order.OrderAttachment) error
	DeleteMany(ctx context.Context, attachments []order.OrderAttachment) error
	GetManyByOrderID(ctx context.Context, orderID kernel.UUID) ([]order.OrderAttachment, error)
	DeleteByOrderID(ctx context.Context, orderID kernel.UUID) error
}

func NewGormOrderRepository(db *gorm.DB, attachments attachmentStore, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:          db,
		attachments: attachments,
		tracker:     tracker,
	}
}

// Add inserts the order and its complete attachment set.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.attachments.CreateMany(ctx, aggregate.Attachments().Items()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(ctx, aggregate.ID(), aggregate)
	return nil
}

// Update writes the order row and the attachment links added or removed since
// the order was loaded.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("recipient_id", "deliveryman_id", "status", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("order", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	if err := r.attachments.CreateMany(ctx, aggregate.Attachments().NewItems()); err != nil {
		return err
	}
	if err := r.attachments.DeleteMany(ctx, aggregate.Attachments().RemovedItems()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(ctx, aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID together with its attachment links.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	attachments, err := r.attachments.GetManyByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, attachments)
}

// Delete removes the order and its attachment links.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.attachments.DeleteByOrderID(ctx, aggregate.ID()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", aggregate.ID().Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return nil
}
