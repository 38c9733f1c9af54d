package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"
)

// Account field errors.
var (
	// ErrUsernameTaken is returned when the requested username is already in use.
	ErrUsernameTaken = errs.NewValueIsInvalidErrorWithCause(
		"username",
		errors.New("A user with that username already exists."),
	)
)

// RegisterUserCommandHandler handles user registration. The password is
// stored as a bcrypt hash and the opaque access token is issued immediately,
// so a registered user can authenticate without a separate login.
type RegisterUserCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for registration operations.
func NewRegisterUserCommandHandler(uowFactory AccountUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the persisted user.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*tenant.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := tenant.NewUser(
		cmd.Username(), cmd.Name(), cmd.Email(),
		string(hash), uuid.New().String(), cmd.CompanyID())
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

	if cmd.CompanyID() != nil {
		if _, err = uow.CompanyRepository().Get(ctx, *cmd.CompanyID()); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					"company",
					fmt.Errorf(`Invalid pk "%d" - object does not exist.`, *cmd.CompanyID()),
				)
			}
			return nil, err
		}
	}

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
