package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrUpdateBoxCommandIsNotConstructed = errors.New(
	"UpdateBoxCommand must be created via NewUpdateBoxCommand constructor",
)

// BoxPatch is a partial update of a box. A nil field means "leave as is".
// The status is system-controlled and has no representation here.
type BoxPatch struct {
	OrderID            *uint64
	ClientCode         *string
	Code               *string
	Dimensions         *kernel.Dimensions
	ContentDescription *string
}

// UpdateBoxCommand represents a partial update of a box owned by the actor's
// company.
type UpdateBoxCommand struct { //nolint:recvcheck //using for validation
	actor tenant.Actor
	boxID uint64
	patch BoxPatch

	guard guard.ConstructorGuard
}

// NewUpdateBoxCommand creates a command to apply a partial box update.
func NewUpdateBoxCommand(actor tenant.Actor, boxID uint64, patch BoxPatch) (UpdateBoxCommand, error) {
	if err := actor.Validate(); err != nil {
		return UpdateBoxCommand{}, err
	}
	if boxID == 0 {
		return UpdateBoxCommand{}, errs.NewValueIsRequiredError("boxID")
	}

	return UpdateBoxCommand{
		actor: actor,
		boxID: boxID,
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBoxCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBoxCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c UpdateBoxCommand) Actor() tenant.Actor { return c.actor }

// BoxID returns the identifier of the box being updated.
func (c UpdateBoxCommand) BoxID() uint64 { return c.boxID }

// Patch returns the partial update to apply.
func (c UpdateBoxCommand) Patch() BoxPatch { return c.patch }
