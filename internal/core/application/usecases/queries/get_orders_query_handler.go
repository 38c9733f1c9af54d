package queries

import (
	"context"

	"gorm.io/gorm"

	"tracking/internal/core/domain/model/box"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/tenant"
)

// GetOrdersQueryHandler retrieves pages of orders with their derived status.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for paginated order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query. The count covers the whole visible set,
// not just the returned page.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (Page[OrderResponse], error) {
	if err := query.Validate(); err != nil {
		return Page[OrderResponse]{}, err
	}

	if err := query.Actor().Authorize(); err != nil {
		return Page[OrderResponse]{}, err
	}

	scoped := scopeOrders(h.db.WithContext(ctx), query.Actor())

	var count int64
	if err := scoped.Model(&orderRow{}).Count(&count).Error; err != nil {
		return Page[OrderResponse]{}, err
	}

	var rows []orderRow
	err := scoped.
		Order("id").
		Offset((query.Page() - 1) * query.PageSize()).
		Limit(query.PageSize()).
		Find(&rows).Error
	if err != nil {
		return Page[OrderResponse]{}, err
	}

	results, err := h.attachBoxInfo(ctx, rows)
	if err != nil {
		return Page[OrderResponse]{}, err
	}

	return Page[OrderResponse]{Count: count, Results: results}, nil
}

// attachBoxInfo decorates order rows with box ids and the derived status set.
func (h GetOrdersQueryHandler) attachBoxInfo(ctx context.Context, rows []orderRow) ([]OrderResponse, error) {
	results := make([]OrderResponse, 0, len(rows))
	if len(rows) == 0 {
		return results, nil
	}

	ids := make([]uint64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	var boxes []boxRow
	if err := h.db.WithContext(ctx).Where("order_id IN ?", ids).Order("id").Find(&boxes).Error; err != nil {
		return nil, err
	}

	boxIDs := make(map[uint64][]uint64, len(rows))
	statuses := make(map[uint64][]box.Status, len(rows))
	for _, b := range boxes {
		oid := *b.OrderID
		boxIDs[oid] = append(boxIDs[oid], b.ID)
		statuses[oid] = append(statuses[oid], box.Status(b.Status))
	}

	for _, r := range rows {
		resp := r.toResponse()
		if ids := boxIDs[r.ID]; ids != nil {
			resp.BoxIDs = ids
		}
		resp.Status = order.CombineStatuses(statuses[r.ID])
		results = append(results, resp)
	}

	return results, nil
}

// scopeOrders narrows an orders query to the actor's visibility: transport
// companies see everything, everyone else only their own company's orders.
// A user without a company sees nothing.
func scopeOrders(db *gorm.DB, actor tenant.Actor) *gorm.DB {
	if actor.IsTransportCompany() {
		return db
	}
	if actor.CompanyID() == nil {
		return db.Where("1 = 0")
	}
	return db.Where("company_id = ?", *actor.CompanyID())
}
