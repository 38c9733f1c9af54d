package event

import (
	"errors"
	"fmt"
	"time"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// Domain errors for event operations.
var (
	// ErrStatusIsRequired is returned when attempting to record an event without a status.
	ErrStatusIsRequired = errs.NewValueIsRequiredError("status")
	// ErrAuthorIsRequired is returned when attempting to record an event without an author.
	ErrAuthorIsRequired = errs.NewValueIsRequiredError("user")
	// ErrEventIsNotConstructed is returned when using an improperly initialized Event.
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")
	// ErrIDAlreadyAssigned is returned when assigning an identifier to an event that already has one.
	ErrIDAlreadyAssigned = errors.New("identifier is already assigned")
)

// Event is an append-only audit record written alongside workflow
// operations. Events are never updated or deleted. The order reference is
// optional: shipment events carry the waybill in their comment instead of
// pointing at a single order.
type Event struct {
	id       uint64
	status   string
	orderID  *uint64
	comments string
	authorID uint64
	at       time.Time

	guard guard.ConstructorGuard
}

// NewEvent records a status event authored by the given user.
func NewEvent(status string, orderID *uint64, comments string, authorID uint64, at time.Time) (*Event, error) {
	e := &Event{
		orderID:  orderID,
		comments: comments,
		at:       at,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setStatus(status),
		e.setAuthorID(authorID),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// NewOrderCreated records the event written when an order is created.
func NewOrderCreated(orderID *uint64, authorID uint64, at time.Time) (*Event, error) {
	return NewEvent("NEW", orderID, "", authorID, at)
}

// NewShipmentCreated records the event written when a shipment is created.
// The event references no order; the waybill number goes into the comment.
func NewShipmentCreated(waybillNum string, authorID uint64, at time.Time) (*Event, error) {
	return NewEvent("READY_FOR_SHIPPING", nil, fmt.Sprintf("waybill %s", waybillNum), authorID, at)
}

// RestoreEvent reconstructs an event from persistence.
func RestoreEvent(id uint64, status string, orderID *uint64, comments string, authorID uint64, at time.Time) (*Event, error) {
	e, err := NewEvent(status, orderID, comments, authorID, at)
	if err != nil {
		return nil, err
	}
	e.id = id
	return e, nil
}

// Validate ensures the event was created through a constructor.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// AssignID sets the identifier produced by the persistence layer.
func (e *Event) AssignID(id uint64) error {
	if e.id != 0 {
		return ErrIDAlreadyAssigned
	}
	e.id = id
	return nil
}

// ID returns the event identifier, zero until persisted.
func (e *Event) ID() uint64 { return e.id }

// Status returns the status label the event records. Event statuses are a
// free-form superset of box statuses, so they stay plain strings.
func (e *Event) Status() string { return e.status }

// OrderID returns the related order, nil for shipment events.
func (e *Event) OrderID() *uint64 { return e.orderID }

// Comments returns the free-form comment.
func (e *Event) Comments() string { return e.comments }

// AuthorID returns the identifier of the recording user.
func (e *Event) AuthorID() uint64 { return e.authorID }

// At returns the time the event was recorded.
func (e *Event) At() time.Time { return e.at }

func (e *Event) setStatus(status string) error {
	if status == "" {
		return ErrStatusIsRequired
	}
	e.status = status
	return nil
}

func (e *Event) setAuthorID(authorID uint64) error {
	if authorID == 0 {
		return ErrAuthorIsRequired
	}
	e.authorID = authorID
	return nil
}
