package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tracking/internal/core/domain/model/event"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
)

// trackingAttempts bounds the regeneration loop for logistic tracking
// collisions. The suffix space is 90 values per user, so collisions are
// rare and transient.
const trackingAttempts = 5

// ErrClientTrackingTaken is returned when the actor's company already has an
// order with the requested client tracking number.
var ErrClientTrackingTaken = errs.NewValueIsInvalidErrorWithCause(
	"client_tracking",
	errors.New("The company already has an order with this number. Unable to add order."),
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates the order with a generated logistic tracking number and records
// the NEW audit event in the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted
// order. Each insert attempt runs in its own transaction so that a logistic
// tracking collision can be retried with a fresh number.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := cmd.Actor().Authorize(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < trackingAttempts; attempt++ {
		o, err := h.attempt(ctx, cmd)
		if err == nil {
			return o, nil
		}
		if !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (h *CreateOrderCommandHandler) attempt(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	tracking, err := kernel.NewTrackingNumber(cmd.Actor().UserID())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		cmd.Actor().UserID(),
		cmd.Actor().CompanyID(),
		cmd.RecipientCompanyID(),
		cmd.ClientTracking(),
		cmd.RecipientOrderNum(),
		tracking,
		cmd.Details(),
		time.Now().UTC(),
	)
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

	if _, err = uow.CompanyRepository().Get(ctx, cmd.RecipientCompanyID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"recipient_id",
				fmt.Errorf(`Invalid pk "%d" - object does not exist.`, cmd.RecipientCompanyID()),
			)
		}
		return nil, err
	}

	taken, err := uow.OrderRepository().ClientTrackingExists(ctx, cmd.ClientTracking(), cmd.Actor().CompanyID(), 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrClientTrackingTaken
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	orderID := o.ID()
	evt, err := event.NewOrderCreated(&orderID, cmd.Actor().UserID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.EventRepository().Add(ctx, evt); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
