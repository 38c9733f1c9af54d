package boxrepo

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/box"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBoxRepository implements BoxRepository using GORM.
type GormBoxRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormBoxRepository creates a new GORM box repository.
func NewGormBoxRepository(db *gorm.DB, tracker aggregateTracker) *GormBoxRepository {
	return &GormBoxRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new box and assigns the generated identifier. A client code
// collision surfaces as ObjectAlreadyExistsError.
func (r *GormBoxRepository) Add(ctx context.Context, aggregate *box.Box) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("client_code", err)
		}
		return err
	}

	if aggregate.ID() == 0 {
		if err := aggregate.AssignID(dto.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing box to the database.
func (r *GormBoxRepository) Update(ctx context.Context, aggregate *box.Box) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BoxDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("client_code", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("boxID", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a box by ID.
func (r *GormBoxRepository) Get(ctx context.Context, id uint64) (*box.Box, error) {
	var dto BoxDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("boxID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBatch retrieves the boxes with the given identifiers, preserving the
// request order. The first missing identifier aborts the whole batch.
func (r *GormBoxRepository) GetBatch(ctx context.Context, ids []uint64) ([]*box.Box, error) {
	var dtos []BoxDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint64]*box.Box, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		byID[b.ID()] = b
	}

	boxes := make([]*box.Box, 0, len(ids))
	for _, id := range ids {
		b, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("boxID", id)
		}
		boxes = append(boxes, b)
	}

	return boxes, nil
}

// DetachAllFromOrder clears the order reference of every box of the order.
func (r *GormBoxRepository) DetachAllFromOrder(ctx context.Context, orderID uint64) error {
	return r.db.WithContext(ctx).
		Model(&BoxDTO{}).
		Where("order_id = ?", orderID).
		Update("order_id", nil).Error
}

// Delete removes the box row.
func (r *GormBoxRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&BoxDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("boxID", id)
	}

	return nil
}
