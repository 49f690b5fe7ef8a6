// Package transport holds the JSON request and response shapes of the rent check.
package transport

import (
	"github.com/shopspring/decimal"

	"rentcheck_backend/internal/wws"
)

// AssessRequest describes one rental unit. Fields marked for shared housing are
// rejected on independent units. Money may be sent as a JSON number or string.
type AssessRequest struct {
	HousingType string          `json:"housingType" validate:"required,oneof=independent shared"`
	PrivateArea float64         `json:"privateArea" validate:"gt=0,lte=100000"`
	EnergyLabel string          `json:"energyLabel" validate:"required,oneof=A++++ A+++ A++ A+ A B C D E F G unknown"`
	Kitchen     KitchenRequest  `json:"kitchen"`
	Sanitary    SanitaryRequest `json:"sanitary"`
	Heating     HeatingRequest  `json:"heating"`
	Outdoor     OutdoorRequest  `json:"outdoor"`
	// SharedArea is the communal living area, shared housing only.
	SharedArea *float64 `json:"sharedArea,omitempty" validate:"omitempty,gte=0,lte=100000"`
	// Valuation is the assessed (WOZ) value, independent housing only.
	Valuation   *decimal.Decimal `json:"valuation,omitempty"`
	CurrentRent *decimal.Decimal `json:"currentRent,omitempty"`
}

type KitchenRequest struct {
	CounterLength string   `json:"counterLength" validate:"required,oneof=<1m 1-2m >=2m"`
	Appliances    []string `json:"appliances" validate:"dive,oneof=hob-induction hob-ceramic hob-gas extractor-hood fridge freezer oven-electric oven-combi dishwasher"`
	Sharers       *int     `json:"sharers,omitempty" validate:"omitempty,min=2,max=1000"`
}

type SanitaryRequest struct {
	ToiletType       string   `json:"toiletType" validate:"required,oneof=none standard hanging sanibroyeur"`
	ToiletInBathroom bool     `json:"toiletInBathroom"`
	Facilities       []string `json:"facilities" validate:"dive,oneof=washbasin multi-washbasin shower bath bath-separate-shower"`
	Sharers          *int     `json:"sharers,omitempty" validate:"omitempty,min=2,max=1000"`
}

type HeatingRequest struct {
	Type               string `json:"type" validate:"required,oneof=central district gas-heater"`
	HeatedRooms        int    `json:"heatedRooms" validate:"min=1,max=1000"`
	ThermostaticValves int    `json:"thermostaticValves" validate:"min=0,max=1000"`
}

type OutdoorRequest struct {
	PrivateArea float64 `json:"privateArea" validate:"gte=0,lte=100000"`
	// SharedArea and Sharers describe communal outdoor space, shared housing only.
	SharedArea *float64 `json:"sharedArea,omitempty" validate:"omitempty,gte=0,lte=100000"`
	Sharers    *int     `json:"sharers,omitempty" validate:"omitempty,min=2,max=1000"`
}

// Status is the badge shown next to an assessment.
type Status string

const (
	StatusOverpaying  Status = "overpaying"
	StatusFairPrice   Status = "fair_price"
	StatusLiberalized Status = "liberalized"
	// StatusRegulated marks a regulated unit assessed without a current rent.
	StatusRegulated Status = "regulated"
)

// AssessResponse is the outcome of one assessment.
type AssessResponse struct {
	AssessmentID string             `json:"assessmentId"`
	HousingType  wws.HousingType    `json:"housingType"`
	RuleYear     int                `json:"ruleYear"`
	Breakdown    wws.ScoreBreakdown `json:"breakdown"`
	Regime       wws.Regime         `json:"regime"`
	MaxRent      *decimal.Decimal   `json:"maxRent,omitempty"`
	CurrentRent  *decimal.Decimal   `json:"currentRent,omitempty"`
	IsOverpaying *bool              `json:"isOverpaying,omitempty"`
	Overpayment  *decimal.Decimal   `json:"overpayment,omitempty"`
	Status       Status             `json:"status"`
	// GaugePercent is current rent as a share of max rent, capped at 100.
	GaugePercent *float64 `json:"gaugePercent,omitempty"`
}

// BatchRequest holds several units. Items are validated one by one so a bad
// item does not fail its neighbours.
type BatchRequest struct {
	Items []AssessRequest `json:"items" validate:"required,min=1"`
}

// BatchItem is the result for the item at Index: either Result or Error is set.
type BatchItem struct {
	Index  int             `json:"index"`
	Result *AssessResponse `json:"result,omitempty"`
	Error  *ItemError      `json:"error,omitempty"`
}

type ItemError struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

type BatchResponse struct {
	Items     []BatchItem `json:"items"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}

// RulesResponse summarizes the active rule set.
type RulesResponse struct {
	Year                 int             `json:"year"`
	EffectiveFrom        string          `json:"effectiveFrom"`
	AvailableYears       []int           `json:"availableYears"`
	LiberalizationPoints float64         `json:"liberalizationPoints"`
	CapExemptionRent     decimal.Decimal `json:"capExemptionRent"`
	RentTable            RentRange       `json:"rentTable"`
	BatchLimit           int             `json:"batchLimit"`
}

// RentRange is the first and last row of the rent table.
type RentRange struct {
	MinPoints int             `json:"minPoints"`
	MinRent   decimal.Decimal `json:"minRent"`
	MaxPoints int             `json:"maxPoints"`
	MaxRent   decimal.Decimal `json:"maxRent"`
}
