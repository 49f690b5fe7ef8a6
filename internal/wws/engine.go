// Package wws implements the Dutch housing valuation system (woningwaarderingsstelsel):
// it scores a rental unit in points, classifies it as regulated or liberalized and
// maps regulated totals to a maximum basic rent.
//
// The package is pure. An Engine holds a read-only RuleSet and may be shared
// between goroutines.
package wws

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AssessmentResult is the outcome of one assessment.
type AssessmentResult struct {
	HousingType HousingType    `json:"housingType"`
	RuleYear    int            `json:"ruleYear"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	Regime      Regime         `json:"regime"`
	// MaxRent is set if and only if Regime is regulated.
	MaxRent     *decimal.Decimal `json:"maxRent,omitempty"`
	CurrentRent *decimal.Decimal `json:"currentRent,omitempty"`
	// Verdict is set only when a current rent was supplied for a regulated unit.
	Verdict *Verdict `json:"verdict,omitempty"`
}

// IsOverpaying reports the verdict, and false for ok when no verdict exists.
func (r *AssessmentResult) IsOverpaying() (overpaying bool, ok bool) {
	if r.Verdict == nil {
		return false, false
	}
	return r.Verdict.IsOverpaying, true
}

// Engine runs the scoring pipeline against one rule set.
type Engine struct {
	rules *RuleSet
}

// NewEngine checks the rule set and returns an engine bound to it.
func NewEngine(rules *RuleSet) (*Engine, error) {
	if err := rules.Check(); err != nil {
		return nil, fmt.Errorf("invalid rule set: %w", err)
	}
	return &Engine{rules: rules}, nil
}

// Rules returns the rule set the engine scores with. Callers must not modify it.
func (e *Engine) Rules() *RuleSet {
	return e.rules
}

// Score validates the unit and runs the six category calculators.
func (e *Engine) Score(unit Unit) (Scores, error) {
	if err := Validate(unit); err != nil {
		return Scores{}, err
	}

	c := unit.common()
	var (
		kitchenSharers  *int
		sanitarySharers *int
		sharedArea      float64
		sharedOutdoor   *SharedOutdoor
		valuation       *decimal.Decimal
	)
	switch u := unit.(type) {
	case *IndependentUnit:
		valuation = u.Valuation
	case *SharedUnit:
		// Shared housing receives no valuation points.
		kitchenSharers = u.KitchenSharers
		sanitarySharers = u.SanitarySharers
		sharedArea = u.SharedArea
		sharedOutdoor = u.SharedOutdoor
	}

	kitchen, err := KitchenPoints(c.Kitchen, kitchenSharers, e.rules)
	if err != nil {
		return Scores{}, err
	}
	sanitary, err := SanitaryPoints(c.Sanitary, sanitarySharers, e.rules)
	if err != nil {
		return Scores{}, err
	}
	heating, err := HeatingPoints(c.Heating, e.rules)
	if err != nil {
		return Scores{}, err
	}
	sanitary.Heating = heating
	sanitary.Points = sanitary.Shared + heating.Points

	energy, err := EnergyPoints(c.EnergyLabel, e.rules)
	if err != nil {
		return Scores{}, err
	}
	outdoor, err := OutdoorPoints(c.PrivateOutdoorArea, sharedOutdoor, e.rules)
	if err != nil {
		return Scores{}, err
	}

	return Scores{
		Kitchen:      kitchen,
		Sanitary:     sanitary,
		Surface:      SurfacePoints(c.PrivateArea, sharedArea, e.rules),
		Energy:       energy,
		Outdoor:      outdoor,
		ValuationRaw: ValuationPoints(valuation, e.rules),
	}, nil
}

// Assess scores the unit, classifies it and evaluates the current rent.
func (e *Engine) Assess(unit Unit) (*AssessmentResult, error) {
	scores, err := e.Score(unit)
	if err != nil {
		return nil, err
	}

	currentRent := unit.common().CurrentRent
	breakdown := Aggregate(scores, currentRent, e.rules)

	result := &AssessmentResult{
		HousingType: unit.HousingType(),
		RuleYear:    e.rules.Year,
		Breakdown:   breakdown,
		Regime:      Classify(breakdown.TotalPoints, e.rules),
		CurrentRent: currentRent,
	}
	if result.Regime == RegimeRegulated {
		maxRent := MaxRent(breakdown.TotalPoints, e.rules)
		result.MaxRent = &maxRent
		result.Verdict = EvaluateOverpayment(result.MaxRent, currentRent)
	}
	return result, nil
}
