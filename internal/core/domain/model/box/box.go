package box

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// Domain errors for box operations.
var (
	// ErrClientCodeIsRequired is returned when attempting to create a box without a client code.
	ErrClientCodeIsRequired = errs.NewValueIsRequiredError("client_code")
	// ErrCodeIsRequired is returned when attempting to create a box without a label code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrOrderIsRequired is returned when attempting to create a box without an order.
	ErrOrderIsRequired = errs.NewValueIsRequiredError("order_id")
	// ErrBoxIsNotConstructed is returned when using an improperly initialized Box.
	ErrBoxIsNotConstructed = errors.New("Box must be created via NewBox constructor")
	// ErrIDAlreadyAssigned is returned when assigning an identifier to a box that already has one.
	ErrIDAlreadyAssigned = errors.New("identifier is already assigned")
	// ErrShipmentIsRequired is returned when attaching a box to an unsaved shipment.
	ErrShipmentIsRequired = errs.NewValueIsRequiredError("shipment")
)

// Box is a physical package belonging to an order. It carries its own
// status lifecycle, independent of the order: the order's derived status is
// the set of its boxes' statuses.
//
// Box invariants:
//   - client_code is globally unique across all tenants (enforced by the
//     persistence layer's unique constraint)
//   - a box is created with status NEW; the status is system-controlled and
//     never writable through the API
//   - the only enforced transition is NEW/READY_FOR_SHIPPING -> SORTING,
//     performed by attaching the box to a shipment
//   - the order reference may become nil when the order is deleted; such
//     orphaned boxes are invisible to ordinary tenant scoping
type Box struct {
	id                 uint64
	orderID            *uint64
	clientCode         string
	code               string
	dimensions         kernel.Dimensions
	contentDescription string
	status             Status
	shipmentID         *uint64

	guard guard.ConstructorGuard
}

// NewBox creates a box attached to an order, with status NEW. The caller is
// responsible for verifying that the order belongs to the creator's company.
func NewBox(
	orderID uint64,
	clientCode, code string,
	dimensions kernel.Dimensions,
	contentDescription string,
) (*Box, error) {
	b := &Box{
		contentDescription: contentDescription,
		status:             StatusNew,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setOrderID(orderID),
		b.setClientCode(clientCode),
		b.setCode(code),
		b.setDimensions(dimensions),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBox reconstructs a box from persistence, including orphaned boxes
// with no order and boxes already attached to a shipment.
func RestoreBox(
	id uint64,
	orderID *uint64,
	clientCode, code string,
	dimensions kernel.Dimensions,
	contentDescription string,
	status Status,
	shipmentID *uint64,
) (*Box, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := dimensions.Validate(); err != nil {
		return nil, err
	}
	if clientCode == "" {
		return nil, ErrClientCodeIsRequired
	}

	return &Box{
		id:                 id,
		orderID:            orderID,
		clientCode:         clientCode,
		code:               code,
		dimensions:         dimensions,
		contentDescription: contentDescription,
		status:             status,
		shipmentID:         shipmentID,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the box was created through a constructor.
func (b *Box) Validate() error {
	if b == nil {
		return ErrBoxIsNotConstructed
	}
	return b.guard.Validate(ErrBoxIsNotConstructed)
}

// AssignID sets the identifier produced by the persistence layer.
func (b *Box) AssignID(id uint64) error {
	if b.id != 0 {
		return ErrIDAlreadyAssigned
	}
	b.id = id
	return nil
}

// AttachToShipment performs the only API-enforced status transition: the
// box moves to SORTING and references the shipment. The shipment must
// already be persisted.
func (b *Box) AttachToShipment(shipmentID uint64) error {
	if shipmentID == 0 {
		return ErrShipmentIsRequired
	}

	newStatus, err := b.status.Attach()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.shipmentID = &shipmentID
	return nil
}

// AssignOrder moves the box under another order. The caller is responsible
// for verifying that the order belongs to the actor's company.
func (b *Box) AssignOrder(orderID uint64) error {
	return b.setOrderID(orderID)
}

// ChangeClientCode replaces the client code. The code must stay non-empty.
func (b *Box) ChangeClientCode(clientCode string) error {
	return b.setClientCode(clientCode)
}

// ChangeCode replaces the label code. The code must stay non-empty.
func (b *Box) ChangeCode(code string) error {
	return b.setCode(code)
}

// ChangeDimensions replaces the physical attributes.
func (b *Box) ChangeDimensions(dimensions kernel.Dimensions) error {
	return b.setDimensions(dimensions)
}

// ChangeContentDescription replaces the content description.
func (b *Box) ChangeContentDescription(description string) {
	b.contentDescription = description
}

// ID returns the box identifier, zero until persisted.
func (b *Box) ID() uint64 { return b.id }

// OrderID returns the owning order identifier, nil for orphaned boxes.
func (b *Box) OrderID() *uint64 { return b.orderID }

// ClientCode returns the globally unique code of the box in the sender's system.
func (b *Box) ClientCode() string { return b.clientCode }

// Code returns the label code.
func (b *Box) Code() string { return b.code }

// Dimensions returns the physical attributes.
func (b *Box) Dimensions() kernel.Dimensions { return b.dimensions }

// ContentDescription returns the description of the box contents.
func (b *Box) ContentDescription() string { return b.contentDescription }

// Status returns the current lifecycle status.
func (b *Box) Status() Status { return b.status }

// ShipmentID returns the shipment reference, nil when not yet shipped.
func (b *Box) ShipmentID() *uint64 { return b.shipmentID }

func (b *Box) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return ErrOrderIsRequired
	}
	b.orderID = &orderID
	return nil
}

func (b *Box) setClientCode(clientCode string) error {
	if clientCode == "" {
		return ErrClientCodeIsRequired
	}
	b.clientCode = clientCode
	return nil
}

func (b *Box) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	b.code = code
	return nil
}

func (b *Box) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	b.dimensions = dimensions
	return nil
}
