package commands

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/box"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
)

// UpdateBoxCommandHandler handles partial box updates. Ownership of a box is
// derived from its order's company; orphaned boxes are not updatable. Moving
// a box to another order requires that order to belong to the actor's
// company as well.
type UpdateBoxCommandHandler struct {
	uowFactory BoxUoWFactory
}

// NewUpdateBoxCommandHandler creates a handler for box update operations.
func NewUpdateBoxCommandHandler(uowFactory BoxUoWFactory) UpdateBoxCommandHandler {
	return UpdateBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the box update command and returns the updated box.
func (h *UpdateBoxCommandHandler) Handle(ctx context.Context, cmd UpdateBoxCommand) (*box.Box, error) {
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

	b, err := uow.BoxRepository().Get(ctx, cmd.BoxID())
	if err != nil {
		return nil, err
	}

	if _, err = h.ownedOrder(ctx, uow, cmd, b.OrderID()); err != nil {
		if errors.Is(err, ErrOrderNotOwned) {
			// An out-of-scope box reads as missing, not forbidden.
			return nil, errs.NewObjectNotFoundError("boxID", cmd.BoxID())
		}
		return nil, err
	}

	if err = h.applyPatch(ctx, uow, cmd, b); err != nil {
		return nil, err
	}

	if err = uow.BoxRepository().Update(ctx, b); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil, ErrClientCodeTaken
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}

func (h *UpdateBoxCommandHandler) applyPatch(ctx context.Context, uow BoxUoW, cmd UpdateBoxCommand, b *box.Box) error {
	patch := cmd.Patch()

	if patch.OrderID != nil {
		if _, err := h.ownedOrder(ctx, uow, cmd, patch.OrderID); err != nil {
			return err
		}
		if err := b.AssignOrder(*patch.OrderID); err != nil {
			return err
		}
	}
	if patch.ClientCode != nil {
		if err := b.ChangeClientCode(*patch.ClientCode); err != nil {
			return err
		}
	}
	if patch.Code != nil {
		if err := b.ChangeCode(*patch.Code); err != nil {
			return err
		}
	}
	if patch.Dimensions != nil {
		if err := b.ChangeDimensions(*patch.Dimensions); err != nil {
			return err
		}
	}
	if patch.ContentDescription != nil {
		b.ChangeContentDescription(*patch.ContentDescription)
	}

	return nil
}

// ownedOrder loads the order and checks it belongs to the actor's company.
// A nil order id, a missing order and a foreign order all collapse into
// ErrOrderNotOwned.
func (h *UpdateBoxCommandHandler) ownedOrder(ctx context.Context, uow BoxUoW, cmd UpdateBoxCommand, orderID *uint64) (*order.Order, error) {
	if orderID == nil {
		return nil, ErrOrderNotOwned
	}

	o, err := uow.OrderRepository().Get(ctx, *orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrOrderNotOwned
		}
		return nil, err
	}

	if !cmd.Actor().OwnsCompany(o.CompanyID()) {
		return nil, ErrOrderNotOwned
	}

	return o, nil
}
