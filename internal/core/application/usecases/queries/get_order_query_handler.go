package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tracking/internal/core/domain/model/box"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order detail. An order outside the
// actor's scope reads as not found.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the detail query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err := query.Actor().Authorize(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row orderRow
	err := scopeOrders(h.db.WithContext(ctx), query.Actor()).
		Where("id = ?", query.OrderID()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	var boxes []boxRow
	if err = h.db.WithContext(ctx).Where("order_id = ?", row.ID).Order("id").Find(&boxes).Error; err != nil {
		return GetOrderQueryResponse{}, err
	}

	var events []eventRow
	if err = h.db.WithContext(ctx).Where("order_id = ?", row.ID).Order("at").Find(&events).Error; err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{OrderResponse: row.toResponse()}

	statuses := make([]box.Status, 0, len(boxes))
	for _, b := range boxes {
		resp.BoxIDs = append(resp.BoxIDs, b.ID)
		statuses = append(statuses, box.Status(b.Status))
	}
	resp.Status = order.CombineStatuses(statuses)

	resp.Events = make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp.Events = append(resp.Events, e.toResponse())
	}

	return resp, nil
}
