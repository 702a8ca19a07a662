package main

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Simplici0/kurocal/internal/nutrition"
	"github.com/Simplici0/kurocal/internal/wizard"
)

const (
	maxWeightKg = 20.0
	maxAgeYears = 25
)

// formError is a field-level problem the user can fix in the form.
type formError struct {
	msg string
}

func (e formError) Error() string { return e.msg }

func fieldErrorf(format string, args ...any) error {
	return formError{msg: fmt.Sprintf(format, args...)}
}

func parseProfileForm(r *http.Request) (wizard.ProfileInput, error) {
	in := wizard.ProfileInput{
		Neutered:  r.FormValue("neutered") == "1",
		Pregnant:  r.FormValue("pregnant") == "1",
		Lactating: r.FormValue("lactating") == "1",
	}

	var err error
	if in.WeightKg, err = parseNonNegativeFloat(r.FormValue("weight_kg"), "weight_kg"); err != nil {
		return in, err
	}
	if in.WeightKg > maxWeightKg {
		return in, fieldErrorf("weight_kg must be at most %.0f", maxWeightKg)
	}
	if in.AgeYears, err = parseIntInRange(r.FormValue("age_years"), "age_years", 0, maxAgeYears); err != nil {
		return in, err
	}
	if in.AgeMonths, err = parseIntInRange(r.FormValue("age_months"), "age_months", 0, 11); err != nil {
		return in, err
	}
	if in.BCS, err = parseIntInRange(r.FormValue("bcs"), "bcs", 1, 9); err != nil {
		return in, err
	}

	return in, nil
}

func parseFoodForm(r *http.Request) (nutrition.FoodInput, error) {
	var food nutrition.FoodInput

	lines := []struct {
		prefix string
		line   *nutrition.FoodLine
	}{
		{"dry", &food.Dry},
		{"wet", &food.Wet},
	}
	for _, l := range lines {
		var err error
		if l.line.GramsPerDay, err = parseOptionalFloat(r.FormValue(l.prefix+"_grams"), l.prefix+"_grams"); err != nil {
			return food, err
		}
		if l.line.KcalPerReference, err = parseOptionalFloat(r.FormValue(l.prefix+"_kcal"), l.prefix+"_kcal"); err != nil {
			return food, err
		}
		if l.line.PackageWeightG, err = parseOptionalFloat(r.FormValue(l.prefix+"_package_g"), l.prefix+"_package_g"); err != nil {
			return food, err
		}
		if l.line.PackagePrice, err = parseOptionalFloat(r.FormValue(l.prefix+"_package_price"), l.prefix+"_package_price"); err != nil {
			return food, err
		}
	}

	return food, nil
}

func parsePlanForm(r *http.Request) (wizard.PlanInput, error) {
	pct, err := parsePercent(r.FormValue("wet_percentage"), "wet_percentage")
	if err != nil {
		return wizard.PlanInput{}, err
	}
	return wizard.PlanInput{WetPercentage: pct}, nil
}

func parseNonNegativeFloat(raw, field string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fieldErrorf("%s must be numeric", field)
	}
	if value < 0 {
		return 0, fieldErrorf("%s must be greater than or equal to 0", field)
	}
	return value, nil
}

// parseOptionalFloat treats a blank field as 0.
func parseOptionalFloat(raw, field string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	return parseNonNegativeFloat(raw, field)
}

func parseIntInRange(raw, field string, min, max int) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fieldErrorf("%s must be a whole number", field)
	}
	if value < min || value > max {
		return 0, fieldErrorf("%s must be between %d and %d", field, min, max)
	}
	return value, nil
}

func parsePercent(raw, field string) (int, error) {
	return parseIntInRange(raw, field, 0, 100)
}
