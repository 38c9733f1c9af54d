package kernel

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

const (
	// TrackingNumberBase is added to the creator's user id to form the
	// numeric stem of a logistic tracking number.
	TrackingNumberBase uint64 = 1000000000
	// trackingSuffixMin and trackingSuffixMax bound the random two-digit
	// suffix appended to the stem.
	trackingSuffixMin = 10
	trackingSuffixMax = 99
)

// ErrTrackingNumberIsNotConstructed is returned when attempting to use an
// improperly initialized TrackingNumber. Tracking numbers must be created via
// NewTrackingNumber or TrackingNumberFromString.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via NewTrackingNumber or TrackingNumberFromString constructors")

// TrackingNumber is the logistic tracking identifier assigned to an order by
// the transport company's system. It is an immutable value object; the value
// is the decimal stem TrackingNumberBase + creator user id followed by a
// random two-digit suffix, e.g. "100000004217" for user 42.
//
// Tracking numbers are globally unique. Uniqueness is not guaranteed by the
// constructor: callers insert under a unique constraint and regenerate on
// collision.
//
// Example:
//
//	tn, err := kernel.NewTrackingNumber(42)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(tn.String()) // e.g. "100000004237"
type TrackingNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewTrackingNumber generates a candidate tracking number for an order
// created by the given user. The user id must be positive.
func NewTrackingNumber(userID uint64) (TrackingNumber, error) {
	if userID == 0 {
		return TrackingNumber{}, errs.NewValueIsRequiredError("userID")
	}

	suffix := rand.IntN(trackingSuffixMax-trackingSuffixMin+1) + trackingSuffixMin //nolint:gosec // not a secret
	value := strconv.FormatUint(TrackingNumberBase+userID, 10) + strconv.Itoa(suffix)

	return TrackingNumber{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// TrackingNumberFromString restores a tracking number from persistence.
// Returns an error if the string is empty.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	return TrackingNumber{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the tracking number in its wire representation.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers by value.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks that the tracking number was properly constructed.
func (t TrackingNumber) Validate() error {
	if err := t.guard.Validate(ErrTrackingNumberIsNotConstructed); err != nil {
		return err
	}
	if t.value == "" {
		return errs.NewValueIsInvalidErrorWithCause("trackingNumber", fmt.Errorf("empty value"))
	}
	return nil
}
