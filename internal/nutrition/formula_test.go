package nutrition

import (
	"errors"
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func roughlyEqual(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Fatalf("%s = %v, want %v (±%v)", name, got, want, tolerance)
	}
}

func TestRestingEnergyRequirement_MatchesFormulaAndIsMonotonic(t *testing.T) {
	prev := 0.0
	for _, w := range []float64{0.1, 0.5, 1, 2.5, 4, 6.3, 10, 20} {
		got, err := RestingEnergyRequirement(w)
		if err != nil {
			t.Fatalf("weight %v: unexpected err: %v", w, err)
		}
		nearlyEqual(t, "rer", got, 70*math.Pow(w, 0.75))
		if got <= prev {
			t.Fatalf("rer not increasing at weight %v: %v <= %v", w, got, prev)
		}
		prev = got
	}
}

func TestRestingEnergyRequirement_RejectsNonPositiveWeight(t *testing.T) {
	for _, w := range []float64{0, -1, -0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := RestingEnergyRequirement(w); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("weight %v: expected ErrInvalidInput, got %v", w, err)
		}
	}
}

func TestActivityMultiplier_PregnancyAndLactationTakePrecedence(t *testing.T) {
	for _, age := range []int{1, 6, 24, 120} {
		for _, bcs := range []int{1, 5, 9} {
			for _, neutered := range []bool{true, false} {
				if got := ActivityMultiplier(age, neutered, bcs, true, true); got != 2.0 {
					t.Fatalf("pregnant age=%d bcs=%d: got %v, want 2.0", age, bcs, got)
				}
				if got := ActivityMultiplier(age, neutered, bcs, false, true); got != 3.0 {
					t.Fatalf("lactating age=%d bcs=%d: got %v, want 3.0", age, bcs, got)
				}
			}
		}
	}
}

func TestActivityMultiplier_LifeStages(t *testing.T) {
	tests := []struct {
		name     string
		age      int
		neutered bool
		bcs      int
		want     float64
	}{
		{"young kitten", 3, true, 5, 3.0},
		{"kitten lower bound", 4, false, 5, 2.0},
		{"kitten upper bound", 12, true, 9, 2.0},
		{"adult neutered ideal", 24, true, 5, 1.2},
		{"adult neutered bcs 4", 13, true, 4, 1.2},
		{"adult neutered overweight", 24, true, 6, 0.8},
		{"adult neutered underweight", 24, true, 3, 1.6},
		{"adult intact ideal", 24, false, 5, 1.4},
		{"adult intact overweight", 83, false, 9, 1.0},
		{"adult intact underweight", 24, false, 1, 1.8},
		{"senior ideal", 84, true, 5, 1.0},
		{"senior overweight", 100, false, 7, 0.8},
		{"senior underweight", 150, true, 2, 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActivityMultiplier(tt.age, tt.neutered, tt.bcs, false, false); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnergy_NeuteredAdultExample(t *testing.T) {
	result, err := Energy(CatProfile{WeightKg: 4, AgeMonths: 24, Neutered: true, BCS: 5})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	roughlyEqual(t, "rer", result.RER, 198.0, 0.05)
	nearlyEqual(t, "multiplier", result.Multiplier, 1.2)
	roughlyEqual(t, "der", result.DER, 237.6, 0.05)
	nearlyEqual(t, "der", result.DER, result.RER*1.2)
}

func TestAnalyzeIntake_DryAndWetReferenceMasses(t *testing.T) {
	food := FoodInput{
		Dry: FoodLine{GramsPerDay: 50, KcalPerReference: 3600},
		Wet: FoodLine{GramsPerDay: 100, KcalPerReference: 100},
	}

	result, err := AnalyzeIntake(food, 237.6)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	nearlyEqual(t, "dryKcal", result.DryKcal, 180)
	nearlyEqual(t, "wetKcal", result.WetKcal, 100)
	nearlyEqual(t, "totalKcal", result.TotalKcal, 280)
	roughlyEqual(t, "difference", result.CalorieDifference, 42.4, 1e-9)
	if result.Status != IntakeOver {
		t.Fatalf("status = %q, want %q", result.Status, IntakeOver)
	}
}

func TestAnalyzeIntake_RequiresACaloricRate(t *testing.T) {
	food := FoodInput{Dry: FoodLine{GramsPerDay: 50}, Wet: FoodLine{GramsPerDay: 80}}
	if _, err := AnalyzeIntake(food, 200); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestClassifyIntake_ToleranceBand(t *testing.T) {
	tests := []struct {
		difference float64
		want       IntakeStatus
	}{
		{5.01, IntakeOver},
		{5, IntakeOnTarget},
		{0, IntakeOnTarget},
		{-5, IntakeOnTarget},
		{-5.01, IntakeUnder},
	}
	for _, tt := range tests {
		if got := ClassifyIntake(tt.difference); got != tt.want {
			t.Fatalf("ClassifyIntake(%v) = %q, want %q", tt.difference, got, tt.want)
		}
	}
}

func TestDailyCost_ZeroWhenPackageWeightUnknown(t *testing.T) {
	nearlyEqual(t, "no weight", DailyCost(50, 0, 800), 0)
	nearlyEqual(t, "negative weight", DailyCost(50, -10, 800), 0)
}

func TestAnalyzeCost_MonthlyProjection(t *testing.T) {
	food := FoodInput{Dry: FoodLine{GramsPerDay: 50, PackageWeightG: 1500, PackagePrice: 800}}

	result := AnalyzeCost(food)

	roughlyEqual(t, "cost per gram", 800.0/1500.0, 0.5333, 1e-4)
	roughlyEqual(t, "dryDailyCost", result.DryDailyCost, 26.67, 0.005)
	nearlyEqual(t, "wetDailyCost", result.WetDailyCost, 0)
	nearlyEqual(t, "totalDailyCost", result.TotalDailyCost, result.DryDailyCost)
	roughlyEqual(t, "totalMonthlyCost", result.TotalMonthlyCost, 800, 1e-9)
}

func TestPlanFeeding_RoundTripsThroughIntake(t *testing.T) {
	food := FoodInput{
		Dry: FoodLine{KcalPerReference: 3600},
		Wet: FoodLine{KcalPerReference: 100},
	}
	der := 237.6

	plan, err := PlanFeeding(der, 50, food)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	nearlyEqual(t, "targetKcal", plan.TargetKcal, der)
	nearlyEqual(t, "targetDryKcal", plan.TargetDryKcal, der/2)
	nearlyEqual(t, "targetWetKcal", plan.TargetWetKcal, der/2)
	nearlyEqual(t, "dry round trip", IntakeCalories(plan.RequiredDryGrams, 3600, DryReferenceMass), plan.TargetDryKcal)
	nearlyEqual(t, "wet round trip", IntakeCalories(plan.RequiredWetGrams, 100, WetReferenceMass), plan.TargetWetKcal)
}

func TestPlanFeeding_ZeroGramsForUnknownRate(t *testing.T) {
	food := FoodInput{Dry: FoodLine{KcalPerReference: 4000}}

	plan, err := PlanFeeding(200, 30, food)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	nearlyEqual(t, "requiredDryGrams", plan.RequiredDryGrams, 35)
	nearlyEqual(t, "requiredWetGrams", plan.RequiredWetGrams, 0)
}

func TestPlanFeeding_Errors(t *testing.T) {
	food := FoodInput{Dry: FoodLine{KcalPerReference: 3600}}

	if _, err := PlanFeeding(200, 101, food); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for 101%%, got %v", err)
	}
	if _, err := PlanFeeding(200, -1, food); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for -1%%, got %v", err)
	}
	if _, err := PlanFeeding(200, 50, FoodInput{}); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestValidateProfile(t *testing.T) {
	valid := CatProfile{WeightKg: 4, AgeMonths: 24, BCS: 5}
	if err := ValidateProfile(valid); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for name, p := range map[string]CatProfile{
		"zero weight": {WeightKg: 0, AgeMonths: 24, BCS: 5},
		"zero age":    {WeightKg: 4, AgeMonths: 0, BCS: 5},
		"bcs low":     {WeightKg: 4, AgeMonths: 24, BCS: 0},
		"bcs high":    {WeightKg: 4, AgeMonths: 24, BCS: 10},
		"nan weight":  {WeightKg: math.NaN(), AgeMonths: 24, BCS: 5},
		"inf weight":  {WeightKg: math.Inf(1), AgeMonths: 24, BCS: 5},
	} {
		if err := ValidateProfile(p); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestValidateFood_RejectsNonFiniteValues(t *testing.T) {
	valid := FoodInput{
		Dry: FoodLine{GramsPerDay: 50, KcalPerReference: 3600, PackageWeightG: 1500, PackagePrice: 800},
		Wet: FoodLine{GramsPerDay: 100, KcalPerReference: 100},
	}
	if err := ValidateFood(valid); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for name, f := range map[string]FoodInput{
		"nan dry grams":  {Dry: FoodLine{GramsPerDay: math.NaN()}},
		"inf wet rate":   {Wet: FoodLine{KcalPerReference: math.Inf(1)}},
		"inf dry price":  {Dry: FoodLine{PackagePrice: math.Inf(1)}},
		"negative inf":   {Wet: FoodLine{PackageWeightG: math.Inf(-1)}},
		"negative grams": {Wet: FoodLine{GramsPerDay: -1}},
	} {
		if err := ValidateFood(f); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestAgeMonths(t *testing.T) {
	if got := AgeMonths(2, 3); got != 27 {
		t.Fatalf("AgeMonths(2, 3) = %d, want 27", got)
	}
	if got := AgeMonths(0, 0); got != 0 {
		t.Fatalf("AgeMonths(0, 0) = %d, want 0", got)
	}
}
