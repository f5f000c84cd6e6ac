package kernel

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// MaxWeightKg is the heaviest parcel any integrated carrier accepts.
	MaxWeightKg = 70.0
	// MaxSideCm is the longest side any integrated carrier accepts.
	MaxSideCm = 200.0
)

// ErrDimensionsIsNotConstructed is returned when zero-value Dimensions are used.
var ErrDimensionsIsNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions holds the physical weight and size of a package.
type Dimensions struct {
	weightKg float64
	lengthCm float64
	widthCm  float64
	heightCm float64
	guard    guard.ConstructorGuard
}

// NewDimensions validates that every measure is positive and within carrier limits.
func NewDimensions(weightKg, lengthCm, widthCm, heightCm float64) (Dimensions, error) {
	d := Dimensions{
		weightKg: weightKg,
		lengthCm: lengthCm,
		widthCm:  widthCm,
		heightCm: heightCm,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inRange("weightKg", weightKg, MaxWeightKg),
		inRange("lengthCm", lengthCm, MaxSideCm),
		inRange("widthCm", widthCm, MaxSideCm),
		inRange("heightCm", heightCm, MaxSideCm),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// Validate checks that the dimensions were built by NewDimensions.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsIsNotConstructed)
}

// WeightKg returns the weight in kilograms.
func (d Dimensions) WeightKg() float64 { return d.weightKg }

// LengthCm returns the length in centimeters.
func (d Dimensions) LengthCm() float64 { return d.lengthCm }

// WidthCm returns the width in centimeters.
func (d Dimensions) WidthCm() float64 { return d.widthCm }

// HeightCm returns the height in centimeters.
func (d Dimensions) HeightCm() float64 { return d.heightCm }

// String renders "1.20kg 30x20x10cm".
func (d Dimensions) String() string {
	return fmt.Sprintf("%.2fkg %gx%gx%gcm", d.weightKg, d.lengthCm, d.widthCm, d.heightCm)
}

func inRange(param string, value, maxValue float64) error {
	if value <= 0 || value > maxValue {
		return errs.NewValueIsOutOfRangeError(param, value, "0 (exclusive)", maxValue)
	}
	return nil
}
