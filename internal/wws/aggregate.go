package wws

import (
	"math"

	"github.com/shopspring/decimal"
)

// ScoreBreakdown is the per-category result. Sanitary includes heating.
type ScoreBreakdown struct {
	Kitchen   float64 `json:"kitchen"`
	Sanitary  float64 `json:"sanitary"`
	Surface   float64 `json:"surface"`
	Energy    float64 `json:"energy"`
	Outdoor   float64 `json:"outdoor"`
	Valuation float64 `json:"valuation"`

	// ValuationRaw is the bracket score before the cap.
	ValuationRaw        float64 `json:"valuationRaw"`
	ValuationCapLimit   float64 `json:"valuationCapLimit"`
	ValuationCapApplied bool    `json:"valuationCapApplied"`
	ValuationCapExempt  bool    `json:"valuationCapExempt"`

	// TotalPoints keeps full precision; every comparison uses it.
	TotalPoints        float64 `json:"totalPoints"`
	TotalPointsRounded int     `json:"totalPointsRounded"`

	KitchenDetail  KitchenScore  `json:"kitchenDetail"`
	SanitaryDetail SanitaryScore `json:"sanitaryDetail"`
	SurfaceDetail  SurfaceScore  `json:"surfaceDetail"`
	OutdoorDetail  OutdoorScore  `json:"outdoorDetail"`
}

// Scores are the independent calculator outputs fed into Aggregate.
type Scores struct {
	Kitchen      KitchenScore
	Sanitary     SanitaryScore
	Surface      SurfaceScore
	Energy       float64
	Outdoor      OutdoorScore
	ValuationRaw float64
}

// Aggregate sums the sub-scores and caps valuation at a third of the total
// unless the current rent exceeds the exemption rent.
func Aggregate(s Scores, currentRent *decimal.Decimal, rules *RuleSet) ScoreBreakdown {
	rawTotal := s.Kitchen.Points + s.Sanitary.Points + s.Surface.Points + s.Energy + s.Outdoor.Points + s.ValuationRaw
	others := rawTotal - s.ValuationRaw
	capLimit := others / rules.Valuation.CapDivisor

	exempt := currentRent != nil && currentRent.GreaterThan(rules.Regime.CapExemptionRent)
	valuation := s.ValuationRaw
	applied := false
	if s.ValuationRaw > capLimit && !exempt {
		valuation = capLimit
		applied = true
	}

	total := others + valuation

	return ScoreBreakdown{
		Kitchen:             s.Kitchen.Points,
		Sanitary:            s.Sanitary.Points,
		Surface:             s.Surface.Points,
		Energy:              s.Energy,
		Outdoor:             s.Outdoor.Points,
		Valuation:           valuation,
		ValuationRaw:        s.ValuationRaw,
		ValuationCapLimit:   capLimit,
		ValuationCapApplied: applied,
		ValuationCapExempt:  exempt,
		TotalPoints:         total,
		TotalPointsRounded:  int(math.Round(total)),
		KitchenDetail:       s.Kitchen,
		SanitaryDetail:      s.Sanitary,
		SurfaceDetail:       s.Surface,
		OutdoorDetail:       s.Outdoor,
	}
}
