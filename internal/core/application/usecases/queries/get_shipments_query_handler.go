package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"
)

// GetShipmentsQueryHandler retrieves pages of shipments with the ids of
// their boxes.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for paginated shipment listings.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetShipmentsQueryHandler) Handle(ctx context.Context, query GetShipmentsQuery) (Page[ShipmentResponse], error) {
	if err := query.Validate(); err != nil {
		return Page[ShipmentResponse]{}, err
	}

	if err := query.Actor().Authorize(); err != nil {
		return Page[ShipmentResponse]{}, err
	}

	scoped := scopeShipments(h.db.WithContext(ctx), query.Actor())

	var count int64
	if err := scoped.Model(&shipmentRow{}).Count(&count).Error; err != nil {
		return Page[ShipmentResponse]{}, err
	}

	var rows []shipmentRow
	err := scoped.
		Order("id").
		Offset((query.Page() - 1) * query.PageSize()).
		Limit(query.PageSize()).
		Find(&rows).Error
	if err != nil {
		return Page[ShipmentResponse]{}, err
	}

	return h.buildPage(ctx, count, rows)
}

func (h GetShipmentsQueryHandler) buildPage(ctx context.Context, count int64, rows []shipmentRow) (Page[ShipmentResponse], error) {
	results := make([]ShipmentResponse, 0, len(rows))
	if len(rows) == 0 {
		return Page[ShipmentResponse]{Count: count, Results: results}, nil
	}

	ids := make([]uint64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	var boxes []boxRow
	if err := h.db.WithContext(ctx).Where("shipment_id IN ?", ids).Order("id").Find(&boxes).Error; err != nil {
		return Page[ShipmentResponse]{}, err
	}

	boxIDs := make(map[uint64][]uint64, len(rows))
	for _, b := range boxes {
		boxIDs[*b.ShipmentID] = append(boxIDs[*b.ShipmentID], b.ID)
	}

	for _, r := range rows {
		resp := r.toResponse()
		if ids := boxIDs[r.ID]; ids != nil {
			resp.BoxIDs = ids
		}
		results = append(results, resp)
	}

	return Page[ShipmentResponse]{Count: count, Results: results}, nil
}

// GetShipmentQueryHandler retrieves a single shipment with its boxes.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment detail queries.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// GetShipmentQueryResponse is the shipment detail with its full box rows.
type GetShipmentQueryResponse struct {
	ShipmentResponse
	Boxes []BoxResponse `json:"boxes_info"`
}

// Handle executes the detail query.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	if err := query.Actor().Authorize(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var row shipmentRow
	err := scopeShipments(h.db.WithContext(ctx), query.Actor()).
		Where("shipments.id = ?", query.ShipmentID()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
		}
		return GetShipmentQueryResponse{}, err
	}

	var boxes []boxRow
	if err = h.db.WithContext(ctx).Where("shipment_id = ?", row.ID).Order("id").Find(&boxes).Error; err != nil {
		return GetShipmentQueryResponse{}, err
	}

	resp := GetShipmentQueryResponse{
		ShipmentResponse: row.toResponse(),
		Boxes:            make([]BoxResponse, 0, len(boxes)),
	}
	for _, b := range boxes {
		resp.BoxIDs = append(resp.BoxIDs, b.ID)
		resp.Boxes = append(resp.Boxes, b.toResponse())
	}

	return resp, nil
}

// scopeShipments narrows a shipments query to the actor's visibility.
// Ordinary tenants see a shipment only when it carries at least one box of
// their company.
func scopeShipments(db *gorm.DB, actor tenant.Actor) *gorm.DB {
	if actor.IsTransportCompany() {
		return db
	}
	if actor.CompanyID() == nil {
		return db.Where("1 = 0")
	}
	return db.Where(`EXISTS (
		SELECT 1 FROM boxes
		JOIN orders ON orders.id = boxes.order_id
		WHERE boxes.shipment_id = shipments.id AND orders.company_id = ?
	)`, *actor.CompanyID())
}
