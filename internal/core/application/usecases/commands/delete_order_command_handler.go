package commands

import (
	"context"

	"tracking/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles order deletion. The order's boxes
// survive with a cleared order reference and its events are kept, so the
// audit trail outlives the order itself.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().Authorize(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !cmd.Actor().OwnsCompany(o.CompanyID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	if err = uow.BoxRepository().DetachAllFromOrder(ctx, o.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
