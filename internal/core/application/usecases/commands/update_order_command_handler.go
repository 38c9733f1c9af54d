package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles partial order updates. Only orders owned
// by the actor's company may be updated; the transport-company read override
// does not extend to writes, and an out-of-scope order is reported as not
// found rather than forbidden.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command and returns the updated order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := cmd.Actor().Authorize(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !cmd.Actor().OwnsCompany(o.CompanyID()) {
		return nil, errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	patch := cmd.Patch()
	if patch.ClientTracking != nil && *patch.ClientTracking != o.ClientTracking() {
		taken, err := uow.OrderRepository().ClientTrackingExists(
			ctx, *patch.ClientTracking, o.CompanyID(), o.ID())
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrClientTrackingTaken
		}
	}

	if err = o.Apply(patch, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
