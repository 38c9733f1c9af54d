package queries

import (
	"errors"

	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetShipmentsQueryIsNotConstructed = errors.New(
		"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
	)
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
)

// GetShipmentsQuery retrieves a page of shipments visible to the actor:
// every shipment for transport companies, otherwise only shipments carrying
// at least one box of the actor's company.
type GetShipmentsQuery struct { //nolint:recvcheck //using for validation
	actor    tenant.Actor
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a paginated shipment listing query.
func NewGetShipmentsQuery(actor tenant.Actor, page, pageSize int) (GetShipmentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetShipmentsQuery{}, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	return GetShipmentsQuery{
		actor:    actor,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetShipmentsQuery) Actor() tenant.Actor { return q.actor }

// Page returns the 1-based page number.
func (q GetShipmentsQuery) Page() int { return q.page }

// PageSize returns the page length.
func (q GetShipmentsQuery) PageSize() int { return q.pageSize }

// GetShipmentQuery retrieves a single shipment with its boxes.
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	actor      tenant.Actor
	shipmentID uint64

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a single shipment detail query.
func NewGetShipmentQuery(actor tenant.Actor, shipmentID uint64) (GetShipmentQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}
	if shipmentID == 0 {
		return GetShipmentQuery{}, errs.NewValueIsRequiredError("shipmentID")
	}

	return GetShipmentQuery{
		actor:      actor,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetShipmentQuery) Actor() tenant.Actor { return q.actor }

// ShipmentID returns the requested shipment identifier.
func (q GetShipmentQuery) ShipmentID() uint64 { return q.shipmentID }
