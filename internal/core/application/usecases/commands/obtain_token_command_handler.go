package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"tracking/internal/pkg/errs"
)

// ErrInvalidCredentials is returned on any login failure. An unknown
// username and a wrong password produce the same error so the endpoint does
// not leak which usernames exist.
var ErrInvalidCredentials = errs.NewValueIsInvalidErrorWithCause(
	"non_field_errors",
	errors.New("Unable to log in with provided credentials."),
)

// ObtainTokenCommandHandler handles credential login. The stored token is
// stable: logging in again returns the same token rather than rotating it.
type ObtainTokenCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewObtainTokenCommandHandler creates a handler for login operations.
func NewObtainTokenCommandHandler(uowFactory AccountUoWFactory) ObtainTokenCommandHandler {
	return ObtainTokenCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the login command and returns the user's access token.
func (h *ObtainTokenCommandHandler) Handle(ctx context.Context, cmd ObtainTokenCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(cmd.Password())); err != nil {
		return "", ErrInvalidCredentials
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return user.Token(), nil
}
