package commands

import (
	"errors"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new shipping order on
// behalf of the actor's company.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor              tenant.Actor
	recipientCompanyID uint64
	clientTracking     string
	recipientOrderNum  string
	details            order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Field-level requirements (client tracking, recipient order number,
// recipient company) are enforced by the Order constructor, so the command
// only checks the actor here.
func NewCreateOrderCommand(
	actor tenant.Actor,
	recipientCompanyID uint64,
	clientTracking, recipientOrderNum string,
	details order.Details,
) (CreateOrderCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		actor:              actor,
		recipientCompanyID: recipientCompanyID,
		clientTracking:     clientTracking,
		recipientOrderNum:  recipientOrderNum,
		details:            details,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c CreateOrderCommand) Actor() tenant.Actor { return c.actor }

// RecipientCompanyID returns the company the order is addressed to.
func (c CreateOrderCommand) RecipientCompanyID() uint64 { return c.recipientCompanyID }

// ClientTracking returns the sender's own tracking number.
func (c CreateOrderCommand) ClientTracking() string { return c.clientTracking }

// RecipientOrderNum returns the recipient's order number.
func (c CreateOrderCommand) RecipientOrderNum() string { return c.recipientOrderNum }

// Details returns the descriptive shipping and recipient attributes.
func (c CreateOrderCommand) Details() order.Details { return c.details }
