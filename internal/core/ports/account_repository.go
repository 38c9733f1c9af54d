package ports

import (
	"context"

	"tracking/internal/core/domain/model/tenant"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user and assigns its identifier.
	Add(ctx context.Context, aggregate *tenant.User) error

	// Update persists changes to an existing user, including token rotation.
	Update(ctx context.Context, aggregate *tenant.User) error

	// GetByUsername retrieves a user by its unique username.
	// Returns errs.ObjectNotFoundError when no such user exists.
	GetByUsername(ctx context.Context, username string) (*tenant.User, error)

	// GetByToken retrieves a user by its authentication token.
	// Returns errs.ObjectNotFoundError when no such user exists.
	GetByToken(ctx context.Context, token string) (*tenant.User, error)
}

// CompanyRepository defines the persistence contract for companies.
type CompanyRepository interface {
	// Add persists a new company and assigns its identifier.
	Add(ctx context.Context, aggregate *tenant.Company) error

	// Get retrieves a company by its identifier.
	// Returns errs.ObjectNotFoundError when no such company exists.
	Get(ctx context.Context, id uint64) (*tenant.Company, error)
}
