package box

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Status represents the lifecycle state of a box.
//
// Full declared lifecycle:
//
//	NEW ──> READY_FOR_SHIPPING ──> SORTING ──> DELIVERING ──┬──> DONE
//	                                               ▲        │
//	                                               └─ DELAYED
//	CANCELED (reachable from any state)
//
// Only one transition is enforced through the API: a box in NEW or
// READY_FOR_SHIPPING moves to SORTING when attached to a shipment. The
// remaining states are declared, restorable from persistence and reachable
// only by administrative mutation.
type Status string

const (
	// StatusNew is the initial status assigned to every created box.
	StatusNew Status = "NEW"
	// StatusReadyForShipping marks a box packed at the sender's warehouse.
	StatusReadyForShipping Status = "READY_FOR_SHIPPING"
	// StatusSorting marks a box received at the transport company's warehouse.
	StatusSorting Status = "SORTING"
	// StatusDelivering marks a box handed to a courier for delivery.
	StatusDelivering Status = "DELIVERING"
	// StatusDelayed marks a box whose delivery missed its deadline.
	StatusDelayed Status = "DELAYED"
	// StatusDone marks a delivered box.
	StatusDone Status = "DONE"
	// StatusCanceled marks a canceled box.
	StatusCanceled Status = "CANCELED"
)

// getValidStatuses returns the set of declared status values.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusNew:              {},
		StatusReadyForShipping: {},
		StatusSorting:          {},
		StatusDelivering:       {},
		StatusDelayed:          {},
		StatusDone:             {},
		StatusCanceled:         {},
	}
}

// Validate checks that the status is one of the declared values.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// ValidateAttach checks whether a box in this status may be attached to a
// shipment, without performing the transition. Only NEW and
// READY_FOR_SHIPPING boxes are eligible.
func (s Status) ValidateAttach() error {
	if s != StatusNew && s != StatusReadyForShipping {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to attach to a shipment", s),
		)
	}
	return nil
}

// Attach transitions the status to SORTING.
//
// Valid transitions:
//   - NEW -> SORTING
//   - READY_FOR_SHIPPING -> SORTING
//
// Returns an error for any other source status.
func (s Status) Attach() (Status, error) {
	if err := s.ValidateAttach(); err != nil {
		return "", err
	}
	return StatusSorting, nil
}
