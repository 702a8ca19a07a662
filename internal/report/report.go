// Package report renders a wizard's accumulated results as plain text.
package report

import (
	"fmt"
	"strings"

	"github.com/Simplici0/kurocal/internal/nutrition"
)

// NotAvailable is printed in place of a section whose data has not been computed.
const NotAvailable = "not yet available"

// Disclaimer closes every report.
const Disclaimer = "These figures are estimates for healthy cats. Individual needs vary; consult your veterinarian before changing your cat's diet."

// Section headers, in the order they appear.
const (
	HeaderProfile = "[Cat profile]"
	HeaderEnergy  = "[Daily energy requirement]"
	HeaderIntake  = "[Intake analysis]"
	HeaderCost    = "[Monthly cost]"
	HeaderPlan    = "[Feeding plan]"
	HeaderNotice  = "[Disclaimer]"
)

// Input is everything a report can show. Intake, Cost and Plan are optional.
type Input struct {
	Profile  nutrition.CatProfile
	Energy   nutrition.EnergyResult
	Intake   *nutrition.IntakeAnalysis
	Cost     *nutrition.CostAnalysis
	Plan     *nutrition.FeedingPlan
	Currency string
}

// Render produces the text report. Section headers and ordering never change.
func Render(in Input) string {
	var b strings.Builder

	b.WriteString("Kuro cat calorie report\n")
	b.WriteString("=======================\n\n")

	b.WriteString(HeaderProfile + "\n")
	writeProfile(&b, in.Profile)
	b.WriteString("\n")

	b.WriteString(HeaderEnergy + "\n")
	fmt.Fprintf(&b, "Resting energy requirement (RER): %.2f kcal/day\n", in.Energy.RER)
	fmt.Fprintf(&b, "Activity multiplier: %.1f\n", in.Energy.Multiplier)
	fmt.Fprintf(&b, "Daily energy requirement (DER): %.2f kcal/day\n", in.Energy.DER)
	b.WriteString("\n")

	b.WriteString(HeaderIntake + "\n")
	if in.Intake != nil {
		writeIntake(&b, *in.Intake)
	} else {
		b.WriteString(NotAvailable + "\n")
	}
	b.WriteString("\n")

	b.WriteString(HeaderCost + "\n")
	if in.Cost != nil {
		writeCost(&b, *in.Cost, in.Currency)
	} else {
		b.WriteString(NotAvailable + "\n")
	}
	b.WriteString("\n")

	b.WriteString(HeaderPlan + "\n")
	if in.Plan != nil {
		writePlan(&b, *in.Plan)
	} else {
		b.WriteString(NotAvailable + "\n")
	}
	b.WriteString("\n")

	b.WriteString(HeaderNotice + "\n")
	b.WriteString(Disclaimer + "\n")

	return b.String()
}

func writeProfile(b *strings.Builder, p nutrition.CatProfile) {
	fmt.Fprintf(b, "Weight: %.2f kg\n", p.WeightKg)
	fmt.Fprintf(b, "Age: %s\n", formatAge(p.AgeMonths))
	fmt.Fprintf(b, "Neutered: %s\n", yesNo(p.Neutered))
	fmt.Fprintf(b, "Body condition score: %d/9\n", p.BCS)
	fmt.Fprintf(b, "Pregnant: %s\n", yesNo(p.Pregnant))
	fmt.Fprintf(b, "Lactating: %s\n", yesNo(p.Lactating))
}

func writeIntake(b *strings.Builder, in nutrition.IntakeAnalysis) {
	fmt.Fprintf(b, "Dry food: %.2f kcal\n", in.DryKcal)
	fmt.Fprintf(b, "Wet food: %.2f kcal\n", in.WetKcal)
	fmt.Fprintf(b, "Total intake: %.2f kcal/day\n", in.TotalKcal)
	fmt.Fprintf(b, "Difference from DER: %+.2f kcal (%s)\n", in.CalorieDifference, in.Status.Label())
	if advice := in.Status.Advice(); advice != "" {
		b.WriteString(advice + "\n")
	}
}

func writeCost(b *strings.Builder, c nutrition.CostAnalysis, currency string) {
	fmt.Fprintf(b, "Dry food per day: %s\n", money(c.DryDailyCost, currency))
	fmt.Fprintf(b, "Wet food per day: %s\n", money(c.WetDailyCost, currency))
	fmt.Fprintf(b, "Total per day: %s\n", money(c.TotalDailyCost, currency))
	fmt.Fprintf(b, "Total per month (%d days): %s\n", nutrition.DaysPerMonth, money(c.TotalMonthlyCost, currency))
}

func writePlan(b *strings.Builder, p nutrition.FeedingPlan) {
	fmt.Fprintf(b, "Target: %.2f kcal/day (%d%% wet, %d%% dry)\n", p.TargetKcal, p.WetPercentage, 100-p.WetPercentage)
	fmt.Fprintf(b, "Dry food: %.2f g/day (%.2f kcal)\n", p.RequiredDryGrams, p.TargetDryKcal)
	fmt.Fprintf(b, "Wet food: %.2f g/day (%.2f kcal)\n", p.RequiredWetGrams, p.TargetWetKcal)
}

func formatAge(months int) string {
	years, rest := months/12, months%12
	switch {
	case years == 0:
		return fmt.Sprintf("%d months", rest)
	case rest == 0:
		return fmt.Sprintf("%d years", years)
	default:
		return fmt.Sprintf("%d years %d months", years, rest)
	}
}

func money(amount float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
