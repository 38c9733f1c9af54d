package commands

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrObtainTokenCommandIsNotConstructed = errors.New(
	"ObtainTokenCommand must be created via NewObtainTokenCommand constructor",
)

// ObtainTokenCommand represents a login request exchanging credentials for
// the user's access token.
type ObtainTokenCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewObtainTokenCommand creates a command to exchange credentials for a token.
func NewObtainTokenCommand(username, password string) (ObtainTokenCommand, error) {
	if username == "" {
		return ObtainTokenCommand{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return ObtainTokenCommand{}, errs.NewValueIsRequiredError("password")
	}

	return ObtainTokenCommand{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ObtainTokenCommand) Validate() error {
	return c.guard.Validate(ErrObtainTokenCommandIsNotConstructed)
}

// Username returns the login name.
func (c ObtainTokenCommand) Username() string { return c.username }

// Password returns the plaintext password to verify.
func (c ObtainTokenCommand) Password() string { return c.password }
