package commands

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/box"
	"tracking/internal/pkg/errs"
)

// Box field errors shared by creation and update.
var (
	// ErrOrderNotOwned is returned when the referenced order does not exist
	// or belongs to another company. Both cases read the same to the caller.
	ErrOrderNotOwned = errs.NewValueIsInvalidErrorWithCause(
		"order_id",
		errors.New("An order with this id does not belong to the user's company."),
	)
	// ErrClientCodeTaken is returned when another box already uses the client code.
	ErrClientCodeTaken = errs.NewValueIsInvalidErrorWithCause(
		"client_code",
		errors.New("box with this client code already exists."),
	)
)

// CreateBoxCommandHandler handles box creation. A box can only be added to
// an order of the actor's own company, and its client code must be globally
// unique.
type CreateBoxCommandHandler struct {
	uowFactory BoxUoWFactory
}

// NewCreateBoxCommandHandler creates a handler for box creation operations.
func NewCreateBoxCommandHandler(uowFactory BoxUoWFactory) CreateBoxCommandHandler {
	return CreateBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the box creation command and returns the persisted box.
func (h *CreateBoxCommandHandler) Handle(ctx context.Context, cmd CreateBoxCommand) (*box.Box, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := cmd.Actor().Authorize(); err != nil {
		return nil, err
	}

	b, err := box.NewBox(cmd.OrderID(), cmd.ClientCode(), cmd.Code(), cmd.Dimensions(), cmd.ContentDescription())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrOrderNotOwned
		}
		return nil, err
	}

	if !cmd.Actor().OwnsCompany(o.CompanyID()) {
		return nil, ErrOrderNotOwned
	}

	if err = uow.BoxRepository().Add(ctx, b); err != nil {
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
