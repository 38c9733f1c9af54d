package tenant

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	// ErrUserBlocked is returned for every operation attempted by a user
	// blocked by an administrator. The check runs before any business logic.
	ErrUserBlocked = errors.New("user blocked by administrator")
	// ErrActorIsNotConstructed is returned when using an improperly initialized Actor.
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")
)

// Actor is the authenticated principal attached to a request. It carries
// everything the rule layer needs to scope visibility and authorize writes:
// the user identity, the owning company and the transport-company override.
//
// Actor is a value object built by the authentication middleware from the
// persisted user and passed into commands and queries.
type Actor struct {
	userID           uint64
	companyID        *uint64
	transportCompany bool
	blocked          bool

	guard guard.ConstructorGuard
}

// NewActor creates the request principal for a user. The user id must be
// positive; companyID is nil for users not attached to a company.
func NewActor(userID uint64, companyID *uint64, transportCompany, blocked bool) (Actor, error) {
	if userID == 0 {
		return Actor{}, errs.NewValueIsRequiredError("userID")
	}

	return Actor{
		userID:           userID,
		companyID:        companyID,
		transportCompany: transportCompany,
		blocked:          blocked,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// Authorize rejects blocked users. It must be checked before any business
// logic touches the request.
func (a Actor) Authorize() error {
	if a.blocked {
		return ErrUserBlocked
	}
	return nil
}

// UserID returns the identifier of the authenticated user.
func (a Actor) UserID() uint64 { return a.userID }

// CompanyID returns the identifier of the actor's company, nil when the
// user is not attached to one.
func (a Actor) CompanyID() *uint64 { return a.companyID }

// IsTransportCompany reports whether the actor's company has cross-tenant
// read visibility.
func (a Actor) IsTransportCompany() bool { return a.transportCompany }

// OwnsCompany reports whether the given company is the actor's own company.
// Used for write authorization, where the transport override does not apply.
func (a Actor) OwnsCompany(companyID *uint64) bool {
	if a.companyID == nil || companyID == nil {
		return false
	}
	return *a.companyID == *companyID
}
