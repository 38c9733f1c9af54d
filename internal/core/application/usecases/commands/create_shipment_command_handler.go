package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tracking/internal/core/domain/model/box"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles shipment assembly. The whole batch is
// validated up front and the shipment insert, box transitions and audit
// event all commit in one transaction: either every box moves to SORTING or
// none does.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	assembler  services.ShipmentAssembler
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		assembler:  services.NewShipmentAssembler(),
	}
}

// Handle processes the shipment creation command and returns the persisted
// shipment with its attached boxes.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, []*box.Box, error) {
	if err := cmd.Validate(); err != nil {
		return nil, nil, err
	}

	if err := cmd.Actor().Authorize(); err != nil {
		return nil, nil, err
	}

	shp, err := shipment.NewShipment(
		cmd.WaybillNum(), cmd.WaybillDate(), cmd.Comment(),
		cmd.Actor().UserID(), time.Now().UTC())
	if err != nil {
		return nil, nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	boxes, err := h.loadBoxes(ctx, uow, cmd.BoxIDs())
	if err != nil {
		return nil, nil, err
	}

	orders, err := h.loadOrders(ctx, uow, boxes)
	if err != nil {
		return nil, nil, err
	}

	if err = h.assembler.Validate(cmd.Actor(), boxes, orders); err != nil {
		return nil, nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, shp); err != nil {
		return nil, nil, err
	}

	evt, err := h.assembler.Assemble(cmd.Actor(), shp, boxes)
	if err != nil {
		return nil, nil, err
	}

	for _, b := range boxes {
		if err = uow.BoxRepository().Update(ctx, b); err != nil {
			return nil, nil, err
		}
	}

	if err = uow.EventRepository().Add(ctx, evt); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return shp, boxes, nil
}

// loadBoxes fetches the batch and converts a missing identifier into the
// field-level error reported on boxes_ids.
func (h *CreateShipmentCommandHandler) loadBoxes(ctx context.Context, uow ShipmentUoW, ids []uint64) ([]*box.Box, error) {
	boxes, err := uow.BoxRepository().GetBatch(ctx, ids)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"boxes_ids",
				fmt.Errorf(`Invalid pk "%v" - object does not exist.`, notFound.ID),
			)
		}
		return nil, err
	}
	return boxes, nil
}

func (h *CreateShipmentCommandHandler) loadOrders(ctx context.Context, uow ShipmentUoW, boxes []*box.Box) (map[uint64]*order.Order, error) {
	ids := make([]uint64, 0, len(boxes))
	seen := make(map[uint64]struct{}, len(boxes))
	for _, b := range boxes {
		if b.OrderID() == nil {
			continue
		}
		if _, ok := seen[*b.OrderID()]; ok {
			continue
		}
		seen[*b.OrderID()] = struct{}{}
		ids = append(ids, *b.OrderID())
	}

	if len(ids) == 0 {
		return map[uint64]*order.Order{}, nil
	}

	return uow.OrderRepository().GetBatch(ctx, ids)
}
