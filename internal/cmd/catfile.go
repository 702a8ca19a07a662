package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/Simplici0/kurocal/internal/nutrition"
	"github.com/Simplici0/kurocal/internal/wizard"
)

// catFile is the TOML description the report command reads.
type catFile struct {
	Currency string       `toml:"currency"`
	Cat      catSection   `toml:"cat"`
	Food     *foodSection `toml:"food"`
	Plan     *planSection `toml:"plan"`
}

type catSection struct {
	WeightKg  float64 `toml:"weight_kg"`
	AgeYears  int     `toml:"age_years"`
	AgeMonths int     `toml:"age_months"`
	Neutered  bool    `toml:"neutered"`
	BCS       int     `toml:"bcs"`
	Pregnant  bool    `toml:"pregnant"`
	Lactating bool    `toml:"lactating"`
}

type foodSection struct {
	Dry dryFood `toml:"dry"`
	Wet wetFood `toml:"wet"`
}

type dryFood struct {
	GramsPerDay    float64 `toml:"grams_per_day"`
	KcalPer1000g   float64 `toml:"kcal_per_1000g"`
	PackageWeightG float64 `toml:"package_weight_g"`
	PackagePrice   float64 `toml:"package_price"`
}

type wetFood struct {
	GramsPerDay    float64 `toml:"grams_per_day"`
	KcalPer100g    float64 `toml:"kcal_per_100g"`
	PackageWeightG float64 `toml:"package_weight_g"`
	PackagePrice   float64 `toml:"package_price"`
}

type planSection struct {
	WetPercentage int `toml:"wet_percentage"`
}

func loadCatFile(path string) (catFile, error) {
	var f catFile
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return catFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return catFile{}, fmt.Errorf("read %s: unknown key %q", path, undecoded[0].String())
	}
	return f, nil
}

func (c catSection) profileInput() wizard.ProfileInput {
	return wizard.ProfileInput(c)
}

func (f foodSection) foodInput() nutrition.FoodInput {
	return nutrition.FoodInput{
		Dry: nutrition.FoodLine{
			GramsPerDay:      f.Dry.GramsPerDay,
			KcalPerReference: f.Dry.KcalPer1000g,
			PackageWeightG:   f.Dry.PackageWeightG,
			PackagePrice:     f.Dry.PackagePrice,
		},
		Wet: nutrition.FoodLine{
			GramsPerDay:      f.Wet.GramsPerDay,
			KcalPerReference: f.Wet.KcalPer100g,
			PackageWeightG:   f.Wet.PackageWeightG,
			PackagePrice:     f.Wet.PackagePrice,
		},
	}
}

// run drives a fresh wizard through every step the file has data for.
func (f catFile) run() (wizard.State, error) {
	s, err := wizard.New().SubmitProfile(f.Cat.profileInput())
	if err != nil {
		return s, fmt.Errorf("cat: %w", err)
	}
	if f.Food == nil {
		return s, nil
	}

	if s, err = s.Advance(); err != nil {
		return s, err
	}
	if s, err = s.SubmitIntake(f.Food.foodInput()); err != nil {
		return s, fmt.Errorf("food: %w", err)
	}
	if f.Plan == nil {
		return s, nil
	}

	if s, err = s.Advance(); err != nil {
		return s, err
	}
	if s, err = s.SubmitPlan(wizard.PlanInput{WetPercentage: f.Plan.WetPercentage}); err != nil {
		return s, fmt.Errorf("plan: %w", err)
	}
	return s.Advance()
}
