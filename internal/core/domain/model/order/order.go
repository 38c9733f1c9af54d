package order

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrClientTrackingIsRequired is returned when attempting to create an order without a client tracking number.
	ErrClientTrackingIsRequired = errs.NewValueIsRequiredError("client_tracking")
	// ErrRecipientOrderNumIsRequired is returned when attempting to create an order without the recipient's order number.
	ErrRecipientOrderNumIsRequired = errs.NewValueIsRequiredError("recipient_order_num")
	// ErrRecipientCompanyIsRequired is returned when attempting to create an order without a recipient company.
	ErrRecipientCompanyIsRequired = errs.NewValueIsRequiredError("recipient_id")
	// ErrUserIsRequired is returned when attempting to create an order without a creator.
	ErrUserIsRequired = errs.NewValueIsRequiredError("user")
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrIDAlreadyAssigned is returned when assigning an identifier to an order that already has one.
	ErrIDAlreadyAssigned = errors.New("identifier is already assigned")
)

// defaultShippingMethod is applied when the client omits the field.
const defaultShippingMethod = "auto"

// Order is a shipping request created by a user on behalf of its company.
// An order aggregates boxes and has no stored status of its own: the status
// is always derived from the statuses of its boxes (see CombineStatuses).
//
// Identity invariants:
//   - logistic_tracking is globally unique and system-generated from the
//     creator's user id; collisions are resolved by the persistence layer's
//     unique constraint plus bounded retry
//   - client_tracking is unique per owning company only, so two companies
//     may use the same value
//   - the owning company is the creator's company at creation time and may
//     become nil if the company is later deleted
type Order struct {
	id                 uint64
	userID             uint64
	companyID          *uint64
	recipientCompanyID uint64
	logisticTracking   kernel.TrackingNumber
	clientTracking     string
	recipientOrderNum  string
	details            Details
	updatedAt          time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order on behalf of the given creator. The logistic
// tracking number is generated by the caller so it can be regenerated on a
// uniqueness collision without rebuilding the aggregate.
func NewOrder(
	userID uint64,
	companyID *uint64,
	recipientCompanyID uint64,
	clientTracking, recipientOrderNum string,
	logisticTracking kernel.TrackingNumber,
	details Details,
	now time.Time,
) (*Order, error) {
	o := &Order{
		companyID: companyID,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setRecipientCompanyID(recipientCompanyID),
		o.setClientTracking(clientTracking),
		o.setRecipientOrderNum(recipientOrderNum),
		o.setLogisticTracking(logisticTracking),
	); err != nil {
		return nil, err
	}

	o.setDetails(details)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id uint64,
	userID uint64,
	companyID *uint64,
	recipientCompanyID uint64,
	clientTracking, recipientOrderNum string,
	logisticTracking kernel.TrackingNumber,
	details Details,
	updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(userID, companyID, recipientCompanyID, clientTracking, recipientOrderNum,
		logisticTracking, details, updatedAt)
	if err != nil {
		return nil, err
	}
	o.id = id
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// AssignID sets the identifier produced by the persistence layer.
func (o *Order) AssignID(id uint64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	o.id = id
	return nil
}

// RegenerateTracking replaces the logistic tracking number. Used by the
// creation workflow when an insert hits the unique constraint.
func (o *Order) RegenerateTracking(tracking kernel.TrackingNumber) error {
	return o.setLogisticTracking(tracking)
}

// Apply merges a partial update into the order. Absent (nil) patch fields
// keep their current values. The last-modified timestamp is refreshed on
// every call, even when the patch changes nothing.
func (o *Order) Apply(patch Patch, now time.Time) error {
	if patch.ClientTracking != nil {
		if err := o.setClientTracking(*patch.ClientTracking); err != nil {
			return err
		}
	}
	if patch.RecipientOrderNum != nil {
		if err := o.setRecipientOrderNum(*patch.RecipientOrderNum); err != nil {
			return err
		}
	}

	o.details = patch.mergeInto(o.details)
	o.updatedAt = now
	return nil
}

// ID returns the order identifier, zero until persisted.
func (o *Order) ID() uint64 { return o.id }

// UserID returns the identifier of the creating user.
func (o *Order) UserID() uint64 { return o.userID }

// CompanyID returns the owning company, nil when the company was deleted.
func (o *Order) CompanyID() *uint64 { return o.companyID }

// RecipientCompanyID returns the company the order is addressed to.
func (o *Order) RecipientCompanyID() uint64 { return o.recipientCompanyID }

// LogisticTracking returns the system-generated tracking number.
func (o *Order) LogisticTracking() kernel.TrackingNumber { return o.logisticTracking }

// ClientTracking returns the sender's own tracking number.
func (o *Order) ClientTracking() string { return o.clientTracking }

// RecipientOrderNum returns the recipient's order number.
func (o *Order) RecipientOrderNum() string { return o.recipientOrderNum }

// Details returns the descriptive shipping and recipient attributes.
func (o *Order) Details() Details { return o.details }

// UpdatedAt returns the last-modified timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

func (o *Order) setUserID(userID uint64) error {
	if userID == 0 {
		return ErrUserIsRequired
	}
	o.userID = userID
	return nil
}

func (o *Order) setRecipientCompanyID(companyID uint64) error {
	if companyID == 0 {
		return ErrRecipientCompanyIsRequired
	}
	o.recipientCompanyID = companyID
	return nil
}

func (o *Order) setClientTracking(clientTracking string) error {
	if clientTracking == "" {
		return ErrClientTrackingIsRequired
	}
	o.clientTracking = clientTracking
	return nil
}

func (o *Order) setRecipientOrderNum(num string) error {
	if num == "" {
		return ErrRecipientOrderNumIsRequired
	}
	o.recipientOrderNum = num
	return nil
}

func (o *Order) setLogisticTracking(tracking kernel.TrackingNumber) error {
	if err := tracking.Validate(); err != nil {
		return err
	}
	o.logisticTracking = tracking
	return nil
}

func (o *Order) setDetails(details Details) {
	if details.ShippingMethod == "" {
		details.ShippingMethod = defaultShippingMethod
	}
	o.details = details
}
