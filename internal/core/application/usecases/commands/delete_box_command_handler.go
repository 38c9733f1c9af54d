package commands

import (
	"context"
	"errors"

	"tracking/internal/pkg/errs"
)

// DeleteBoxCommandHandler handles box deletion. Ownership is derived from
// the box's order; orphaned and foreign boxes read as missing.
type DeleteBoxCommandHandler struct {
	uowFactory BoxUoWFactory
}

// NewDeleteBoxCommandHandler creates a handler for box deletion operations.
func NewDeleteBoxCommandHandler(uowFactory BoxUoWFactory) DeleteBoxCommandHandler {
	return DeleteBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the box deletion command.
func (h *DeleteBoxCommandHandler) Handle(ctx context.Context, cmd DeleteBoxCommand) error {
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

	b, err := uow.BoxRepository().Get(ctx, cmd.BoxID())
	if err != nil {
		return err
	}

	if err = h.checkOwnership(ctx, uow, cmd, b.OrderID()); err != nil {
		return err
	}

	if err = uow.BoxRepository().Delete(ctx, b.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *DeleteBoxCommandHandler) checkOwnership(ctx context.Context, uow BoxUoW, cmd DeleteBoxCommand, orderID *uint64) error {
	notFound := errs.NewObjectNotFoundError("boxID", cmd.BoxID())
	if orderID == nil {
		return notFound
	}

	o, err := uow.OrderRepository().Get(ctx, *orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound
		}
		return err
	}

	if !cmd.Actor().OwnsCompany(o.CompanyID()) {
		return notFound
	}

	return nil
}
