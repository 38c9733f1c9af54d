package commands

import (
	"errors"

	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrDeleteBoxCommandIsNotConstructed = errors.New(
	"DeleteBoxCommand must be created via NewDeleteBoxCommand constructor",
)

// DeleteBoxCommand represents a request to delete a box owned by the actor's
// company.
type DeleteBoxCommand struct { //nolint:recvcheck //using for validation
	actor tenant.Actor
	boxID uint64

	guard guard.ConstructorGuard
}

// NewDeleteBoxCommand creates a command to delete a box.
func NewDeleteBoxCommand(actor tenant.Actor, boxID uint64) (DeleteBoxCommand, error) {
	if err := actor.Validate(); err != nil {
		return DeleteBoxCommand{}, err
	}
	if boxID == 0 {
		return DeleteBoxCommand{}, errs.NewValueIsRequiredError("boxID")
	}

	return DeleteBoxCommand{
		actor: actor,
		boxID: boxID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBoxCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBoxCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c DeleteBoxCommand) Actor() tenant.Actor { return c.actor }

// BoxID returns the identifier of the box being deleted.
func (c DeleteBoxCommand) BoxID() uint64 { return c.boxID }
