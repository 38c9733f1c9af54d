package commands

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create a user account.
// Registration is unauthenticated, so the command carries no actor.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	username  string
	name      string
	email     string
	password  string
	companyID *uint64

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user. companyID is
// nil for users not attached to a company yet.
func NewRegisterUserCommand(username, name, email, password string, companyID *uint64) (RegisterUserCommand, error) {
	if username == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("password")
	}

	return RegisterUserCommand{
		username:  username,
		name:      name,
		email:     email,
		password:  password,
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Username returns the requested login name.
func (c RegisterUserCommand) Username() string { return c.username }

// Name returns the display name.
func (c RegisterUserCommand) Name() string { return c.name }

// Email returns the contact email address.
func (c RegisterUserCommand) Email() string { return c.email }

// Password returns the plaintext password to be hashed.
func (c RegisterUserCommand) Password() string { return c.password }

// CompanyID returns the company to attach the user to, nil for none.
func (c RegisterUserCommand) CompanyID() *uint64 { return c.companyID }
