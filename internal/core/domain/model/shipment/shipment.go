package shipment

import (
	"errors"
	"time"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// Domain errors for shipment operations.
var (
	// ErrWaybillNumIsRequired is returned when attempting to create a shipment without a waybill number.
	ErrWaybillNumIsRequired = errs.NewValueIsRequiredError("waybill_num")
	// ErrWaybillDateIsRequired is returned when attempting to create a shipment without a waybill date.
	ErrWaybillDateIsRequired = errs.NewValueIsRequiredError("waybill_date")
	// ErrAuthorIsRequired is returned when attempting to create a shipment without an author.
	ErrAuthorIsRequired = errs.NewValueIsRequiredError("user")
	// ErrShipmentIsNotConstructed is returned when using an improperly initialized Shipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrIDAlreadyAssigned is returned when assigning an identifier to a shipment that already has one.
	ErrIDAlreadyAssigned = errors.New("identifier is already assigned")
)

// Shipment groups boxes under a single waybill. A shipment is immutable
// after creation: boxes reference it, never the other way around, and there
// is no update operation for it.
type Shipment struct {
	id          uint64
	waybillNum  string
	waybillDate time.Time
	comment     string
	authorID    uint64
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewShipment creates a shipment authored by the given transport company user.
func NewShipment(waybillNum string, waybillDate time.Time, comment string, authorID uint64, now time.Time) (*Shipment, error) {
	s := &Shipment{
		comment:   comment,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setWaybillNum(waybillNum),
		s.setWaybillDate(waybillDate),
		s.setAuthorID(authorID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence.
func RestoreShipment(id uint64, waybillNum string, waybillDate time.Time, comment string, authorID uint64, createdAt time.Time) (*Shipment, error) {
	s, err := NewShipment(waybillNum, waybillDate, comment, authorID, createdAt)
	if err != nil {
		return nil, err
	}
	s.id = id
	return s, nil
}

// Validate ensures the shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// AssignID sets the identifier produced by the persistence layer.
func (s *Shipment) AssignID(id uint64) error {
	if s.id != 0 {
		return ErrIDAlreadyAssigned
	}
	s.id = id
	return nil
}

// ID returns the shipment identifier, zero until persisted.
func (s *Shipment) ID() uint64 { return s.id }

// WaybillNum returns the waybill number.
func (s *Shipment) WaybillNum() string { return s.waybillNum }

// WaybillDate returns the waybill date.
func (s *Shipment) WaybillDate() time.Time { return s.waybillDate }

// Comment returns the free-form comment.
func (s *Shipment) Comment() string { return s.comment }

// AuthorID returns the identifier of the creating user.
func (s *Shipment) AuthorID() uint64 { return s.authorID }

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

func (s *Shipment) setWaybillNum(waybillNum string) error {
	if waybillNum == "" {
		return ErrWaybillNumIsRequired
	}
	s.waybillNum = waybillNum
	return nil
}

func (s *Shipment) setWaybillDate(waybillDate time.Time) error {
	if waybillDate.IsZero() {
		return ErrWaybillDateIsRequired
	}
	s.waybillDate = waybillDate
	return nil
}

func (s *Shipment) setAuthorID(authorID uint64) error {
	if authorID == 0 {
		return ErrAuthorIsRequired
	}
	s.authorID = authorID
	return nil
}
