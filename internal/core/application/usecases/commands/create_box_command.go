package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/guard"
)

var ErrCreateBoxCommandIsNotConstructed = errors.New(
	"CreateBoxCommand must be created via NewCreateBoxCommand constructor",
)

// CreateBoxCommand represents a request to add a box to an order owned by
// the actor's company.
type CreateBoxCommand struct { //nolint:recvcheck //using for validation
	actor              tenant.Actor
	orderID            uint64
	clientCode         string
	code               string
	dimensions         kernel.Dimensions
	contentDescription string

	guard guard.ConstructorGuard
}

// NewCreateBoxCommand creates a command to register a new box. Field-level
// requirements are enforced by the Box constructor.
func NewCreateBoxCommand(
	actor tenant.Actor,
	orderID uint64,
	clientCode, code string,
	dimensions kernel.Dimensions,
	contentDescription string,
) (CreateBoxCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateBoxCommand{}, err
	}

	return CreateBoxCommand{
		actor:              actor,
		orderID:            orderID,
		clientCode:         clientCode,
		code:               code,
		dimensions:         dimensions,
		contentDescription: contentDescription,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBoxCommand) Validate() error {
	return c.guard.Validate(ErrCreateBoxCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c CreateBoxCommand) Actor() tenant.Actor { return c.actor }

// OrderID returns the identifier of the owning order.
func (c CreateBoxCommand) OrderID() uint64 { return c.orderID }

// ClientCode returns the globally unique code of the box in the sender's system.
func (c CreateBoxCommand) ClientCode() string { return c.clientCode }

// Code returns the label code.
func (c CreateBoxCommand) Code() string { return c.code }

// Dimensions returns the physical attributes.
func (c CreateBoxCommand) Dimensions() kernel.Dimensions { return c.dimensions }

// ContentDescription returns the description of the box contents.
func (c CreateBoxCommand) ContentDescription() string { return c.contentDescription }
