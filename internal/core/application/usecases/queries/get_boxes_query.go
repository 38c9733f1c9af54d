package queries

import (
	"errors"

	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetBoxesQueryIsNotConstructed = errors.New(
		"GetBoxesQuery must be created via NewGetBoxesQuery constructor",
	)
	ErrGetBoxQueryIsNotConstructed = errors.New(
		"GetBoxQuery must be created via NewGetBoxQuery constructor",
	)
)

// GetBoxesQuery retrieves a page of boxes visible to the actor. Visibility
// follows the owning order's company; orphaned boxes are visible only to
// transport companies.
type GetBoxesQuery struct { //nolint:recvcheck //using for validation
	actor    tenant.Actor
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetBoxesQuery creates a paginated box listing query.
func NewGetBoxesQuery(actor tenant.Actor, page, pageSize int) (GetBoxesQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetBoxesQuery{}, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	return GetBoxesQuery{
		actor:    actor,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBoxesQuery) Validate() error {
	return q.guard.Validate(ErrGetBoxesQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetBoxesQuery) Actor() tenant.Actor { return q.actor }

// Page returns the 1-based page number.
func (q GetBoxesQuery) Page() int { return q.page }

// PageSize returns the page length.
func (q GetBoxesQuery) PageSize() int { return q.pageSize }

// GetBoxQuery retrieves a single box.
type GetBoxQuery struct { //nolint:recvcheck //using for validation
	actor tenant.Actor
	boxID uint64

	guard guard.ConstructorGuard
}

// NewGetBoxQuery creates a single box detail query.
func NewGetBoxQuery(actor tenant.Actor, boxID uint64) (GetBoxQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetBoxQuery{}, err
	}
	if boxID == 0 {
		return GetBoxQuery{}, errs.NewValueIsRequiredError("boxID")
	}

	return GetBoxQuery{
		actor: actor,
		boxID: boxID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBoxQuery) Validate() error {
	return q.guard.Validate(ErrGetBoxQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetBoxQuery) Actor() tenant.Actor { return q.actor }

// BoxID returns the requested box identifier.
func (q GetBoxQuery) BoxID() uint64 { return q.boxID }
