package queries

import (
	"errors"

	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// defaultPageSize matches the API's default page length.
const defaultPageSize = 10

// GetOrdersQuery retrieves a page of orders visible to the actor: its own
// company's orders, or every order when the company is a transport company.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	actor    tenant.Actor
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a paginated order listing query. Non-positive
// page and pageSize fall back to the first page and the default size.
func NewGetOrdersQuery(actor tenant.Actor, page, pageSize int) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	return GetOrdersQuery{
		actor:    actor,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetOrdersQuery) Actor() tenant.Actor { return q.actor }

// Page returns the 1-based page number.
func (q GetOrdersQuery) Page() int { return q.page }

// PageSize returns the page length.
func (q GetOrdersQuery) PageSize() int { return q.pageSize }
