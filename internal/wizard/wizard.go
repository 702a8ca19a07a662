// Package wizard threads calculator results through the four input steps.
//
// State is a value: every operation returns a new State and leaves the
// receiver untouched, so a failed submission never leaves partial results.
package wizard

import (
	"errors"
	"fmt"

	"github.com/Simplici0/kurocal/internal/nutrition"
	"github.com/Simplici0/kurocal/internal/report"
)

// Step identifies a wizard page.
type Step int

const (
	StepProfile Step = iota + 1
	StepIntake
	StepPlan
	StepReport
)

// Title is the heading shown for the step.
func (s Step) Title() string {
	switch s {
	case StepProfile:
		return "Daily energy requirement"
	case StepIntake:
		return "Actual intake and cost"
	case StepPlan:
		return "Feeding plan"
	case StepReport:
		return "Report"
	default:
		return fmt.Sprintf("Step %d", int(s))
	}
}

// Valid reports whether s is one of the four steps.
func (s Step) Valid() bool {
	return s >= StepProfile && s <= StepReport
}

var (
	// ErrStepNotActive is returned when a form is submitted for a step other than the current one.
	ErrStepNotActive = errors.New("step is not active")
	// ErrLastStep is returned when advancing past the report.
	ErrLastStep = errors.New("already at the last step")
)

// ProfileInput is the raw step 1 form.
type ProfileInput struct {
	WeightKg  float64
	AgeYears  int
	AgeMonths int
	Neutered  bool
	BCS       int
	Pregnant  bool
	Lactating bool
}

// PlanInput is the raw step 3 form.
type PlanInput struct {
	WetPercentage int
}

// State is the accumulated result of a wizard session.
type State struct {
	Current Step                      `json:"current_step"`
	Profile *nutrition.CatProfile     `json:"profile,omitempty"`
	Energy  *nutrition.EnergyResult   `json:"energy,omitempty"`
	Food    *nutrition.FoodInput      `json:"food,omitempty"`
	Intake  *nutrition.IntakeAnalysis `json:"intake,omitempty"`
	Cost    *nutrition.CostAnalysis   `json:"cost,omitempty"`
	Plan    *nutrition.FeedingPlan    `json:"plan,omitempty"`
}

// New returns an empty wizard on the first step.
func New() State {
	return State{Current: StepProfile}
}

// CurrentStep returns the active step.
func (s State) CurrentStep() Step {
	return s.Current
}

// Reset discards every result and returns to the first step.
func (s State) Reset() State {
	return New()
}

// SubmitProfile validates the cat profile and computes its energy requirement.
// Results already derived from the previous DER are recomputed in the same action.
func (s State) SubmitProfile(in ProfileInput) (State, error) {
	if s.Current != StepProfile {
		return s, fmt.Errorf("%w: profile belongs to step %d, current step is %d", ErrStepNotActive, StepProfile, s.Current)
	}

	profile := nutrition.CatProfile{
		WeightKg:  in.WeightKg,
		AgeMonths: nutrition.AgeMonths(in.AgeYears, in.AgeMonths),
		Neutered:  in.Neutered,
		BCS:       in.BCS,
		Pregnant:  in.Pregnant,
		Lactating: in.Lactating,
	}
	if err := nutrition.ValidateProfile(profile); err != nil {
		return s, err
	}
	energy, err := nutrition.Energy(profile)
	if err != nil {
		return s, err
	}

	next := s
	next.Profile = &profile
	next.Energy = &energy
	if err := next.recomputeDownstream(); err != nil {
		return s, err
	}
	return next, nil
}

// SubmitIntake stores the food the cat currently eats and analyses intake and cost.
// Cost analysis is left empty when no package data was entered.
func (s State) SubmitIntake(food nutrition.FoodInput) (State, error) {
	if s.Current != StepIntake {
		return s, fmt.Errorf("%w: intake belongs to step %d, current step is %d", ErrStepNotActive, StepIntake, s.Current)
	}
	if s.Energy == nil {
		return s, fmt.Errorf("%w: calculate the daily energy requirement first", nutrition.ErrInsufficientData)
	}
	if err := nutrition.ValidateFood(food); err != nil {
		return s, err
	}

	next := s
	next.Food = &food
	if err := next.recomputeDownstream(); err != nil {
		return s, err
	}
	return next, nil
}

// SubmitPlan computes the feeding plan for the given wet food share.
func (s State) SubmitPlan(in PlanInput) (State, error) {
	if s.Current != StepPlan {
		return s, fmt.Errorf("%w: plan belongs to step %d, current step is %d", ErrStepNotActive, StepPlan, s.Current)
	}
	if s.Energy == nil {
		return s, fmt.Errorf("%w: calculate the daily energy requirement first", nutrition.ErrInsufficientData)
	}
	if s.Food == nil {
		return s, fmt.Errorf("%w: enter the food the cat eats first", nutrition.ErrInsufficientData)
	}

	plan, err := nutrition.PlanFeeding(s.Energy.DER, in.WetPercentage, *s.Food)
	if err != nil {
		return s, err
	}

	next := s
	next.Plan = &plan
	return next, nil
}

// recomputeDownstream refreshes intake, cost and plan from the stored inputs
// so that every derived value refers to the current DER.
func (s *State) recomputeDownstream() error {
	if s.Food == nil || s.Energy == nil {
		return nil
	}

	intake, err := nutrition.AnalyzeIntake(*s.Food, s.Energy.DER)
	if err != nil {
		return err
	}
	s.Intake = &intake

	s.Cost = nil
	if s.Food.Dry.HasPackage() || s.Food.Wet.HasPackage() {
		cost := nutrition.AnalyzeCost(*s.Food)
		s.Cost = &cost
	}

	if s.Plan != nil {
		plan, err := nutrition.PlanFeeding(s.Energy.DER, s.Plan.WetPercentage, *s.Food)
		if err != nil {
			return err
		}
		s.Plan = &plan
	}
	return nil
}

// Advance moves to the next step once the current step's result exists.
func (s State) Advance() (State, error) {
	switch s.Current {
	case StepProfile:
		if s.Energy == nil {
			return s, fmt.Errorf("%w: calculate the daily energy requirement first", nutrition.ErrInsufficientData)
		}
	case StepIntake:
		if s.Intake == nil {
			return s, fmt.Errorf("%w: calculate the actual intake first", nutrition.ErrInsufficientData)
		}
	case StepPlan:
		if s.Plan == nil {
			return s, fmt.Errorf("%w: calculate the feeding plan first", nutrition.ErrInsufficientData)
		}
	case StepReport:
		return s, ErrLastStep
	default:
		return s, fmt.Errorf("unknown step %d", s.Current)
	}

	next := s
	next.Current++
	return next, nil
}

// Back returns to the previous step. Results are kept.
func (s State) Back() State {
	if s.Current > StepProfile {
		s.Current--
	}
	return s
}

// Report renders the text report for the accumulated results.
func (s State) Report(currency string) (string, error) {
	if s.Profile == nil || s.Energy == nil {
		return "", fmt.Errorf("%w: calculate the daily energy requirement first", nutrition.ErrInsufficientData)
	}

	return report.Render(report.Input{
		Profile:  *s.Profile,
		Energy:   *s.Energy,
		Intake:   s.Intake,
		Cost:     s.Cost,
		Plan:     s.Plan,
		Currency: currency,
	}), nil
}
