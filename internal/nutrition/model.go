package nutrition

// Reference masses used by food labels: dry food declares kcal per kilogram,
// wet food declares kcal per 100 g.
const (
	DryReferenceMass = 1000.0
	WetReferenceMass = 100.0
)

// DaysPerMonth is the month length used for cost projections.
const DaysPerMonth = 30

// CatProfile describes the cat whose energy requirement is estimated.
type CatProfile struct {
	WeightKg  float64 `json:"weight_kg"`
	AgeMonths int     `json:"age_months"`
	Neutered  bool    `json:"neutered"`
	BCS       int     `json:"bcs"`
	Pregnant  bool    `json:"pregnant"`
	Lactating bool    `json:"lactating"`
}

// EnergyResult holds the resting and daily energy requirement in kcal/day.
type EnergyResult struct {
	RER        float64 `json:"rer"`
	Multiplier float64 `json:"multiplier"`
	DER        float64 `json:"der"`
}

// FoodLine is what the cat eats of one food type per day and what it costs.
type FoodLine struct {
	GramsPerDay      float64 `json:"grams_per_day"`
	KcalPerReference float64 `json:"kcal_per_reference"`
	PackageWeightG   float64 `json:"package_weight_g"`
	PackagePrice     float64 `json:"package_price"`
}

// HasPackage reports whether any package data was entered for the line.
func (l FoodLine) HasPackage() bool {
	return l.PackageWeightG > 0 || l.PackagePrice > 0
}

// FoodInput groups the dry and wet food lines.
type FoodInput struct {
	Dry FoodLine `json:"dry"`
	Wet FoodLine `json:"wet"`
}

// HasCaloricRate reports whether at least one food type declares a kcal rate.
func (f FoodInput) HasCaloricRate() bool {
	return f.Dry.KcalPerReference > 0 || f.Wet.KcalPerReference > 0
}

// IntakeAnalysis compares actual intake with the daily energy requirement.
type IntakeAnalysis struct {
	DryKcal           float64      `json:"dry_kcal"`
	WetKcal           float64      `json:"wet_kcal"`
	TotalKcal         float64      `json:"total_kcal"`
	CalorieDifference float64      `json:"calorie_difference"`
	Status            IntakeStatus `json:"status"`
}

// CostAnalysis contains daily and monthly feeding cost.
type CostAnalysis struct {
	DryDailyCost     float64 `json:"dry_daily_cost"`
	WetDailyCost     float64 `json:"wet_daily_cost"`
	TotalDailyCost   float64 `json:"total_daily_cost"`
	TotalMonthlyCost float64 `json:"total_monthly_cost"`
}

// FeedingPlan is the daily ration that meets the DER for a given wet/dry split.
type FeedingPlan struct {
	WetPercentage    int     `json:"wet_percentage"`
	TargetKcal       float64 `json:"target_kcal"`
	TargetDryKcal    float64 `json:"target_dry_kcal"`
	TargetWetKcal    float64 `json:"target_wet_kcal"`
	RequiredDryGrams float64 `json:"required_dry_grams"`
	RequiredWetGrams float64 `json:"required_wet_grams"`
}
