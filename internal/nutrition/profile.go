package nutrition

import (
	"fmt"
	"math"
)

// AgeMonths combines an age given as years and months.
func AgeMonths(years, months int) int {
	return years*12 + months
}

// ValidateProfile checks the ranges the formulas rely on.
func ValidateProfile(p CatProfile) error {
	if !positive(p.WeightKg) {
		return fmt.Errorf("%w: weight must be a number greater than zero", ErrInvalidInput)
	}
	if p.AgeMonths <= 0 {
		return fmt.Errorf("%w: age must be at least one month", ErrInvalidInput)
	}
	if p.BCS < 1 || p.BCS > 9 {
		return fmt.Errorf("%w: body condition score must be between 1 and 9", ErrInvalidInput)
	}
	return nil
}

// ValidateFood rejects negative or non-finite quantities, rates and prices.
func ValidateFood(f FoodInput) error {
	for _, line := range []struct {
		name string
		line FoodLine
	}{{"dry", f.Dry}, {"wet", f.Wet}} {
		l := line.line
		for _, v := range []float64{l.GramsPerDay, l.KcalPerReference, l.PackageWeightG, l.PackagePrice} {
			if !finite(v) {
				return fmt.Errorf("%w: %s food values must be numbers", ErrInvalidInput, line.name)
			}
			if v < 0 {
				return fmt.Errorf("%w: %s food values must not be negative", ErrInvalidInput, line.name)
			}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// positive is false for NaN and +Inf.
func positive(v float64) bool {
	return v > 0 && finite(v)
}
