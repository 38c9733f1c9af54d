package commands

import (
	"errors"

	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to delete an order owned by the
// actor's company.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	actor   tenant.Actor
	orderID uint64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
func NewDeleteOrderCommand(actor tenant.Actor, orderID uint64) (DeleteOrderCommand, error) {
	if err := actor.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	if orderID == 0 {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}

	return DeleteOrderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c DeleteOrderCommand) Actor() tenant.Actor { return c.actor }

// OrderID returns the identifier of the order being deleted.
func (c DeleteOrderCommand) OrderID() uint64 { return c.orderID }
