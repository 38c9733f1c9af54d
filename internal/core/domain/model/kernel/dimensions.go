package kernel

import (
	"errors"
	"fmt"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when attempting to use an
// improperly initialized Dimensions value.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions describes the physical attributes of a box: width, height and
// length in meters and weight in kilograms. Every attribute is optional (nil
// when not measured), but a present attribute must not be negative.
//
// Dimensions is an immutable value object. The zero value is invalid; use
// NewDimensions or NoDimensions.
type Dimensions struct { //nolint:recvcheck //using for validation
	width  *float64
	height *float64
	length *float64
	weight *float64
	guard  guard.ConstructorGuard
}

// NewDimensions creates a Dimensions value. Nil attributes mean "not
// measured"; present attributes must be >= 0.
func NewDimensions(width, height, length, weight *float64) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.set(&d.width, "width", width),
		d.set(&d.height, "height", height),
		d.set(&d.length, "length", length),
		d.set(&d.weight, "weight", weight),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// NoDimensions creates an empty Dimensions value with no attributes set.
func NoDimensions() Dimensions {
	return Dimensions{guard: guard.NewConstructorGuard()}
}

// Width returns the box width in meters, nil when not measured.
func (d Dimensions) Width() *float64 { return d.width }

// Height returns the box height in meters, nil when not measured.
func (d Dimensions) Height() *float64 { return d.height }

// Length returns the box length in meters, nil when not measured.
func (d Dimensions) Length() *float64 { return d.length }

// Weight returns the total box weight in kilograms, nil when not measured.
func (d Dimensions) Weight() *float64 { return d.weight }

// Validate checks that the value was properly constructed.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d *Dimensions) set(target **float64, name string, value *float64) error {
	if value == nil {
		return nil
	}
	if *value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is negative", *value))
	}
	v := *value
	*target = &v
	return nil
}
