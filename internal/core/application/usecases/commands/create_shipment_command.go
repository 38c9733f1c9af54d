package commands

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	// ErrBoxesAreRequired is returned when the shipment references no boxes.
	ErrBoxesAreRequired = errs.NewValueIsRequiredError("boxes_ids")
)

// CreateShipmentCommand represents a request to group boxes under a waybill.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	actor       tenant.Actor
	waybillNum  string
	waybillDate time.Time
	comment     string
	boxIDs      []uint64

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to assemble a shipment. The box
// list must be non-empty; waybill requirements are enforced by the Shipment
// constructor.
func NewCreateShipmentCommand(
	actor tenant.Actor,
	waybillNum string,
	waybillDate time.Time,
	comment string,
	boxIDs []uint64,
) (CreateShipmentCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateShipmentCommand{}, err
	}
	if len(boxIDs) == 0 {
		return CreateShipmentCommand{}, ErrBoxesAreRequired
	}

	return CreateShipmentCommand{
		actor:       actor,
		waybillNum:  waybillNum,
		waybillDate: waybillDate,
		comment:     comment,
		boxIDs:      uniqueBoxIDs(boxIDs),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// uniqueBoxIDs drops repeated ids, keeping first occurrences in order. A
// duplicate id in the request is not an error; the box just ships once.
func uniqueBoxIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	unique := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c CreateShipmentCommand) Actor() tenant.Actor { return c.actor }

// WaybillNum returns the waybill number.
func (c CreateShipmentCommand) WaybillNum() string { return c.waybillNum }

// WaybillDate returns the waybill date.
func (c CreateShipmentCommand) WaybillDate() time.Time { return c.waybillDate }

// Comment returns the free-form comment.
func (c CreateShipmentCommand) Comment() string { return c.comment }

// BoxIDs returns the identifiers of the boxes to attach.
func (c CreateShipmentCommand) BoxIDs() []uint64 { return c.boxIDs }
