package tenant

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// Domain errors for company operations.
var (
	// ErrCompanyNameIsRequired is returned when attempting to create a company without a name.
	ErrCompanyNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCompanyIsNotConstructed is returned when using an improperly initialized Company.
	ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany constructor")
	// ErrIDAlreadyAssigned is returned when assigning an identifier to an entity that already has one.
	ErrIDAlreadyAssigned = errors.New("identifier is already assigned")
)

// Company is the tenant of the system. Every user belongs to at most one
// company, and all order, box and shipment visibility is scoped by it.
// A company flagged as a transport company is granted cross-tenant read
// visibility over all tenants' resources.
//
// Companies are created administratively and are immutable once referenced
// by users and orders.
type Company struct {
	id               uint64
	name             string
	transportCompany bool

	guard guard.ConstructorGuard
}

// NewCompany creates a company with the given name. The identifier is
// assigned by the persistence layer via AssignID.
func NewCompany(name string, transportCompany bool) (*Company, error) {
	if name == "" {
		return nil, ErrCompanyNameIsRequired
	}

	return &Company{
		name:             name,
		transportCompany: transportCompany,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestoreCompany reconstructs a company from persistence.
func RestoreCompany(id uint64, name string, transportCompany bool) (*Company, error) {
	company, err := NewCompany(name, transportCompany)
	if err != nil {
		return nil, err
	}
	company.id = id
	return company, nil
}

// Validate ensures the company was created through a constructor.
func (c *Company) Validate() error {
	if c == nil {
		return ErrCompanyIsNotConstructed
	}
	return c.guard.Validate(ErrCompanyIsNotConstructed)
}

// AssignID sets the identifier produced by the persistence layer.
// It may be called only once, on a newly created company.
func (c *Company) AssignID(id uint64) error {
	if c.id != 0 {
		return ErrIDAlreadyAssigned
	}
	c.id = id
	return nil
}

// ID returns the company identifier, zero until persisted.
func (c *Company) ID() uint64 {
	return c.id
}

// Name returns the company name.
func (c *Company) Name() string {
	return c.name
}

// IsTransportCompany reports whether the company is a transport company
// with cross-tenant read visibility.
func (c *Company) IsTransportCompany() bool {
	return c.transportCompany
}
