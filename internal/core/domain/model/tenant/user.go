package tenant

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// Domain errors for user operations.
var (
	// ErrUsernameIsRequired is returned when attempting to create a user without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrPasswordHashIsRequired is returned when attempting to create a user without a password hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password")
	// ErrTokenIsRequired is returned when attempting to create a user without an access token.
	ErrTokenIsRequired = errs.NewValueIsRequiredError("token")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is an authenticated principal of the system. A user belongs to at
// most one company, and every request the user makes is scoped by that
// company. A blocked user is rejected on every endpoint before any business
// logic runs.
type User struct {
	id           uint64
	username     string
	name         string
	email        string
	passwordHash string
	token        string
	companyID    *uint64
	blocked      bool

	guard guard.ConstructorGuard
}

// NewUser creates a user. The password hash and the opaque access token are
// produced by the application layer; the identifier is assigned by the
// persistence layer via AssignID.
func NewUser(username, name, email, passwordHash, token string, companyID *uint64) (*User, error) {
	user := &User{
		name:      name,
		email:     email,
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setUsername(username),
		user.setPasswordHash(passwordHash),
		user.setToken(token),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a user from persistence, including the blocked flag.
func RestoreUser(
	id uint64,
	username, name, email, passwordHash, token string,
	companyID *uint64,
	blocked bool,
) (*User, error) {
	user, err := NewUser(username, name, email, passwordHash, token, companyID)
	if err != nil {
		return nil, err
	}
	user.id = id
	user.blocked = blocked
	return user, nil
}

// Validate ensures the user was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// AssignID sets the identifier produced by the persistence layer.
func (u *User) AssignID(id uint64) error {
	if u.id != 0 {
		return ErrIDAlreadyAssigned
	}
	u.id = id
	return nil
}

// Block marks the user as blocked by an administrator.
func (u *User) Block() {
	u.blocked = true
}

// Unblock lifts an administrative block.
func (u *User) Unblock() {
	u.blocked = false
}

// ID returns the user identifier, zero until persisted.
func (u *User) ID() uint64 { return u.id }

// Username returns the unique login name.
func (u *User) Username() string { return u.username }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the contact email address.
func (u *User) Email() string { return u.email }

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// Token returns the opaque access token.
func (u *User) Token() string { return u.token }

// CompanyID returns the owning company identifier, nil when the user is not
// attached to any company.
func (u *User) CompanyID() *uint64 { return u.companyID }

// IsBlocked reports whether the user is blocked by an administrator.
func (u *User) IsBlocked() bool { return u.blocked }

// ActorFor builds the request principal for this user given its company.
// The company may be nil when the user is not attached to one.
func (u *User) ActorFor(company *Company) (Actor, error) {
	transport := false
	if company != nil {
		if err := company.Validate(); err != nil {
			return Actor{}, err
		}
		transport = company.IsTransportCompany()
	}
	return NewActor(u.id, u.companyID, transport, u.blocked)
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}
	u.token = token
	return nil
}
