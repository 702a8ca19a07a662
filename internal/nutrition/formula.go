package nutrition

import (
	"fmt"
	"math"
)

// RestingEnergyRequirement returns RER = 70 * weight^0.75 in kcal/day.
func RestingEnergyRequirement(weightKg float64) (float64, error) {
	if !positive(weightKg) {
		return 0, fmt.Errorf("%w: weight must be a number greater than zero", ErrInvalidInput)
	}
	return 70 * math.Pow(weightKg, 0.75), nil
}

// ActivityMultiplier returns the life-stage factor applied to RER.
// Pregnancy and lactation take precedence over age and body condition.
func ActivityMultiplier(ageMonths int, neutered bool, bcs int, pregnant, lactating bool) float64 {
	if pregnant {
		return 2.0
	}
	if lactating {
		return 3.0
	}

	switch {
	case ageMonths < 4:
		return 3.0
	case ageMonths <= 12:
		return 2.0
	case ageMonths < 84:
		if neutered {
			return adjustForCondition(bcs, 1.2, 0.8, 1.6)
		}
		return adjustForCondition(bcs, 1.4, 1.0, 1.8)
	default:
		return adjustForCondition(bcs, 1.0, 0.8, 1.2)
	}
}

// adjustForCondition picks the overweight (bcs > 5) or underweight (bcs < 4)
// factor, falling back to base for an ideal body condition.
func adjustForCondition(bcs int, base, overweight, underweight float64) float64 {
	switch {
	case bcs > 5:
		return overweight
	case bcs < 4:
		return underweight
	default:
		return base
	}
}

// DailyEnergyRequirement returns DER = RER * multiplier.
func DailyEnergyRequirement(rer, multiplier float64) float64 {
	return rer * multiplier
}

// Energy computes RER, multiplier and DER for a profile.
func Energy(p CatProfile) (EnergyResult, error) {
	rer, err := RestingEnergyRequirement(p.WeightKg)
	if err != nil {
		return EnergyResult{}, err
	}
	multiplier := ActivityMultiplier(p.AgeMonths, p.Neutered, p.BCS, p.Pregnant, p.Lactating)

	return EnergyResult{
		RER:        rer,
		Multiplier: multiplier,
		DER:        DailyEnergyRequirement(rer, multiplier),
	}, nil
}

// IntakeCalories converts grams eaten into kcal using the label's reference mass.
func IntakeCalories(grams, kcalPerReference, referenceMass float64) float64 {
	return (grams / referenceMass) * kcalPerReference
}

// DailyCost returns the cost of the daily ration, or 0 when the package weight is unknown.
func DailyCost(gramsPerDay, packageWeight, packagePrice float64) float64 {
	if packageWeight <= 0 {
		return 0
	}
	return gramsPerDay * (packagePrice / packageWeight)
}

// RequiredGrams back-calculates grams needed to supply targetKcal, or 0 when the rate is unknown.
func RequiredGrams(targetKcal, kcalPerReference, referenceMass float64) float64 {
	if kcalPerReference <= 0 {
		return 0
	}
	return (targetKcal / kcalPerReference) * referenceMass
}

// AnalyzeIntake computes calories eaten per food type and the difference to der.
func AnalyzeIntake(food FoodInput, der float64) (IntakeAnalysis, error) {
	if !food.HasCaloricRate() {
		return IntakeAnalysis{}, fmt.Errorf("%w: at least one food needs a calorie content", ErrInsufficientData)
	}

	dry := IntakeCalories(food.Dry.GramsPerDay, food.Dry.KcalPerReference, DryReferenceMass)
	wet := IntakeCalories(food.Wet.GramsPerDay, food.Wet.KcalPerReference, WetReferenceMass)
	total := dry + wet
	difference := total - der

	return IntakeAnalysis{
		DryKcal:           dry,
		WetKcal:           wet,
		TotalKcal:         total,
		CalorieDifference: difference,
		Status:            ClassifyIntake(difference),
	}, nil
}

// AnalyzeCost computes daily and monthly feeding cost.
func AnalyzeCost(food FoodInput) CostAnalysis {
	dry := DailyCost(food.Dry.GramsPerDay, food.Dry.PackageWeightG, food.Dry.PackagePrice)
	wet := DailyCost(food.Wet.GramsPerDay, food.Wet.PackageWeightG, food.Wet.PackagePrice)
	daily := dry + wet

	return CostAnalysis{
		DryDailyCost:     dry,
		WetDailyCost:     wet,
		TotalDailyCost:   daily,
		TotalMonthlyCost: daily * DaysPerMonth,
	}
}

// PlanFeeding splits der between wet and dry food and converts each share to grams.
func PlanFeeding(der float64, wetPercentage int, food FoodInput) (FeedingPlan, error) {
	if wetPercentage < 0 || wetPercentage > 100 {
		return FeedingPlan{}, fmt.Errorf("%w: wet food share must be between 0 and 100", ErrInvalidInput)
	}
	if !food.HasCaloricRate() {
		return FeedingPlan{}, fmt.Errorf("%w: at least one food needs a calorie content", ErrInsufficientData)
	}

	wetKcal := der * float64(wetPercentage) / 100
	dryKcal := der - wetKcal

	return FeedingPlan{
		WetPercentage:    wetPercentage,
		TargetKcal:       der,
		TargetDryKcal:    dryKcal,
		TargetWetKcal:    wetKcal,
		RequiredDryGrams: RequiredGrams(dryKcal, food.Dry.KcalPerReference, DryReferenceMass),
		RequiredWetGrams: RequiredGrams(wetKcal, food.Wet.KcalPerReference, WetReferenceMass),
	}, nil
}
