package carrier

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RateStep prices every parcel up to and including MaxWeightKg.
type RateStep struct {
	MaxWeightKg float64
	Price       decimal.Decimal
}

// RateTable is a stepped weight-to-cost tariff ordered by ascending MaxWeightKg.
//
// Example:
//
//	table, _ := carrier.NewRateTable(
//	    carrier.RateStep{MaxWeightKg: 1, Price: decimal.RequireFromString("4.50")},
//	    carrier.RateStep{MaxWeightKg: 2, Price: decimal.RequireFromString("6.90")},
//	)
//	price, _ := table.Price(1.2) // 6.90
type RateTable struct {
	steps []RateStep
}

// NewRateTable validates that steps are non-empty, strictly ascending and non-negative.
func NewRateTable(steps ...RateStep) (RateTable, error) {
	if len(steps) == 0 {
		return RateTable{}, errs.NewValueIsRequiredError("rate steps")
	}

	prev := 0.0
	for i, step := range steps {
		if step.MaxWeightKg <= prev {
			return RateTable{}, errs.NewValueIsInvalidErrorWithCause("rate steps",
				fmt.Errorf("step %d max weight %.3f is not above %.3f", i, step.MaxWeightKg, prev))
		}
		if step.Price.IsNegative() {
			return RateTable{}, errs.NewValueIsInvalidErrorWithCause("rate steps",
				fmt.Errorf("step %d price %s is negative", i, step.Price))
		}
		prev = step.MaxWeightKg
	}

	s := make([]RateStep, len(steps))
	copy(s, steps)
	return RateTable{steps: s}, nil
}

// MustRateTable is NewRateTable for static tariffs; it panics on invalid steps.
func MustRateTable(steps ...RateStep) RateTable {
	t, err := NewRateTable(steps...)
	if err != nil {
		panic(err)
	}
	return t
}

// Price returns the price of the first step whose MaxWeightKg is >= weightKg.
func (t RateTable) Price(weightKg float64) (decimal.Decimal, error) {
	if len(t.steps) == 0 {
		return decimal.Zero, errs.NewValueIsRequiredError("rate steps")
	}
	maxWeight := t.steps[len(t.steps)-1].MaxWeightKg
	if weightKg <= 0 || weightKg > maxWeight {
		return decimal.Zero, errs.NewValueIsOutOfRangeError("weightKg", weightKg, 0, maxWeight)
	}

	for _, step := range t.steps {
		if weightKg <= step.MaxWeightKg {
			return step.Price, nil
		}
	}
	return decimal.Zero, errs.NewValueIsOutOfRangeError("weightKg", weightKg, 0, maxWeight)
}

// Steps returns a copy of the tariff.
func (t RateTable) Steps() []RateStep {
	s := make([]RateStep, len(t.steps))
	copy(s, t.steps)
	return s
}
