package queries

import (
	"errors"

	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its boxes, derived status and
// event history.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	actor   tenant.Actor
	orderID uint64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a single order detail query.
func NewGetOrderQuery(actor tenant.Actor, orderID uint64) (GetOrderQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if orderID == 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}

	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetOrderQuery) Actor() tenant.Actor { return q.actor }

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() uint64 { return q.orderID }

// GetOrderQueryResponse is the order detail, extending the listing row with
// the event history.
type GetOrderQueryResponse struct {
	OrderResponse
	Events []EventResponse `json:"events"`
}
