package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"
)

// GetBoxesQueryHandler retrieves pages of boxes scoped through their orders.
type GetBoxesQueryHandler struct {
	db *gorm.DB
}

// NewGetBoxesQueryHandler creates a handler for paginated box listings.
func NewGetBoxesQueryHandler(db *gorm.DB) GetBoxesQueryHandler {
	return GetBoxesQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetBoxesQueryHandler) Handle(ctx context.Context, query GetBoxesQuery) (Page[BoxResponse], error) {
	if err := query.Validate(); err != nil {
		return Page[BoxResponse]{}, err
	}

	if err := query.Actor().Authorize(); err != nil {
		return Page[BoxResponse]{}, err
	}

	scoped := scopeBoxes(h.db.WithContext(ctx), query.Actor())

	var count int64
	if err := scoped.Model(&boxRow{}).Count(&count).Error; err != nil {
		return Page[BoxResponse]{}, err
	}

	var rows []boxRow
	err := scoped.
		Order("boxes.id").
		Offset((query.Page() - 1) * query.PageSize()).
		Limit(query.PageSize()).
		Find(&rows).Error
	if err != nil {
		return Page[BoxResponse]{}, err
	}

	results := make([]BoxResponse, 0, len(rows))
	for _, r := range rows {
		results = append(results, r.toResponse())
	}

	return Page[BoxResponse]{Count: count, Results: results}, nil
}

// GetBoxQueryHandler retrieves a single box. A box outside the actor's scope
// reads as not found.
type GetBoxQueryHandler struct {
	db *gorm.DB
}

// NewGetBoxQueryHandler creates a handler for box detail queries.
func NewGetBoxQueryHandler(db *gorm.DB) GetBoxQueryHandler {
	return GetBoxQueryHandler{db: db}
}

// Handle executes the detail query.
func (h GetBoxQueryHandler) Handle(ctx context.Context, query GetBoxQuery) (BoxResponse, error) {
	if err := query.Validate(); err != nil {
		return BoxResponse{}, err
	}

	if err := query.Actor().Authorize(); err != nil {
		return BoxResponse{}, err
	}

	var row boxRow
	err := scopeBoxes(h.db.WithContext(ctx), query.Actor()).
		Where("boxes.id = ?", query.BoxID()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BoxResponse{}, errs.NewObjectNotFoundError("boxID", query.BoxID())
		}
		return BoxResponse{}, err
	}

	return row.toResponse(), nil
}

// scopeBoxes narrows a boxes query to the actor's visibility. Ownership is
// carried by the owning order, so ordinary tenants join through orders;
// orphaned boxes drop out of the join and stay visible to transport
// companies only.
func scopeBoxes(db *gorm.DB, actor tenant.Actor) *gorm.DB {
	if actor.IsTransportCompany() {
		return db
	}
	if actor.CompanyID() == nil {
		return db.Where("1 = 0")
	}
	return db.
		Joins("JOIN orders ON orders.id = boxes.order_id").
		Where("orders.company_id = ?", *actor.CompanyID())
}
