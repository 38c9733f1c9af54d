package commands

import (
	"errors"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an order owned by the
// actor's company.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor   tenant.Actor
	orderID uint64
	patch   order.Patch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to apply a partial order update.
func NewUpdateOrderCommand(actor tenant.Actor, orderID uint64, patch order.Patch) (UpdateOrderCommand, error) {
	if err := actor.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}
	if orderID == 0 {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}

	return UpdateOrderCommand{
		actor:   actor,
		orderID: orderID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c UpdateOrderCommand) Actor() tenant.Actor { return c.actor }

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderCommand) OrderID() uint64 { return c.orderID }

// Patch returns the partial update to apply.
func (c UpdateOrderCommand) Patch() order.Patch { return c.patch }
