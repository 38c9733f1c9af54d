package services

import (
	"fmt"

	"tracking/internal/core/domain/model/box"
	"tracking/internal/core/domain/model/event"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"
)

// ShipmentAssembler is the domain service that validates a batch of boxes
// for shipment and performs the attach transition.
//
// Business rules:
//   - every box must carry a client code and belong to an order
//   - the order must be addressed to the actor's company; a transport
//     company may ship anyone's boxes
//   - only boxes in NEW or READY_FOR_SHIPPING may be attached
//   - validation is rule-major: each rule runs against the whole batch
//     before the next rule, and the first violation rejects the batch
type ShipmentAssembler struct{}

// NewShipmentAssembler creates a new ShipmentAssembler instance.
func NewShipmentAssembler() ShipmentAssembler {
	return ShipmentAssembler{}
}

// Validate checks every box in the batch against the attach rules. The
// orders map must contain the owning order of every box that has one,
// keyed by order id.
func (a ShipmentAssembler) Validate(actor tenant.Actor, boxes []*box.Box, orders map[uint64]*order.Order) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	for _, b := range boxes {
		if err := b.Validate(); err != nil {
			return err
		}
	}

	for _, b := range boxes {
		if b.ClientCode() == "" {
			return boxesError(`Box id = %d. You cannot add a box without the given "client_code".`, b.ID())
		}
	}

	for _, b := range boxes {
		if b.OrderID() == nil {
			return boxesError(`Box id = %d. You cannot add a box without the given "order".`, b.ID())
		}
	}

	for _, b := range boxes {
		o, ok := orders[*b.OrderID()]
		if !ok || !mayShip(actor, o) {
			return boxesError(
				`Box with id = %d. Only those boxes can be added that belong to the company to which the current user is attached`,
				b.ID(),
			)
		}
	}

	for _, b := range boxes {
		if err := b.Status().ValidateAttach(); err != nil {
			return boxesError(`Can not add a box with id = %d. Box status must be NEW or READY_FOR_SHIPPING`, b.ID())
		}
	}

	return nil
}

// Assemble attaches every box to the persisted shipment and produces the
// shipment event. The shipment must already have an identifier.
func (a ShipmentAssembler) Assemble(actor tenant.Actor, shp *shipment.Shipment, boxes []*box.Box) (*event.Event, error) {
	if err := shp.Validate(); err != nil {
		return nil, err
	}

	for _, b := range boxes {
		if err := b.AttachToShipment(shp.ID()); err != nil {
			return nil, err
		}
	}

	return event.NewShipmentCreated(shp.WaybillNum(), actor.UserID(), shp.CreatedAt())
}

// mayShip reports whether the actor may put boxes of the order on a
// shipment: the order must be addressed to the actor's company, unless the
// actor belongs to a transport company.
func mayShip(actor tenant.Actor, o *order.Order) bool {
	if actor.IsTransportCompany() {
		return true
	}
	companyID := actor.CompanyID()
	return companyID != nil && *companyID == o.RecipientCompanyID()
}

func boxesError(format string, boxID uint64) error {
	return errs.NewValueIsInvalidErrorWithCause("boxes_ids", fmt.Errorf(format, boxID))
}
