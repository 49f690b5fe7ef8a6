package wws

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testRules() *RuleSet {
	return &RuleSet{
		Year:          2025,
		EffectiveFrom: "2025-07-01",
		Kitchen: KitchenRules{
			Counter: map[CounterLength]float64{CounterUnder1m: 0, Counter1To2m: 4, CounterAtLeast2: 7},
			Appliances: map[Appliance]float64{
				ApplianceInductionHob: 1.75, ApplianceCeramicHob: 1.0, ApplianceGasHob: 0.5,
				ApplianceExtractorHood: 0.75, ApplianceFridge: 1.0, ApplianceFreezer: 0.75,
				ApplianceElectricOven: 1.0, ApplianceCombiOven: 1.0, ApplianceDishwasher: 1.5,
			},
		},
		Sanitary: SanitaryRules{
			Toilets:                 map[ToiletType]float64{ToiletNone: 0, ToiletStandard: 3.0, ToiletHanging: 3.75, ToiletSanibroyeur: 1.0},
			ToiletInBathroomPenalty: 1.0,
			Facilities: map[Facility]float64{
				FacilityWashbasin: 1.0, FacilityMultiWashbasin: 1.5, FacilityShower: 4.0,
				FacilityBath: 6.0, FacilityBathSeparateShower: 7.0,
			},
		},
		Heating: HeatingRules{
			PerRoom:  map[HeatingType]float64{HeatingCentral: 2.0, HeatingDistrict: 2.0, HeatingGasHeater: 1.0},
			PerValve: 0.25,
		},
		Surface: SurfaceRules{PerPrivateM2: 1.0, PerSharedM2: 0.5},
		Energy: EnergyRules{
			Labels: map[EnergyLabel]float64{
				LabelA4: 58, LabelA3: 52, LabelA2: 46, LabelA1: 40, LabelA: 34, LabelB: 28,
				LabelC: 22, LabelD: 12, LabelE: 0, LabelF: 0, LabelG: 0,
			},
			UnknownAs: LabelG,
		},
		Outdoor: OutdoorRules{Base: 2.0, PerM2: 0.35},
		Valuation: ValuationRules{
			CapDivisor: 2,
			Brackets: []ValuationBracket{
				{From: decimal.Zero, Points: 0},
				{From: decimal.NewFromInt(100000), Points: 7},
				{From: decimal.NewFromInt(200000), Points: 14},
				{From: decimal.NewFromInt(400000), Points: 28},
			},
		},
		Regime: RegimeRules{
			LiberalizationPoints: 187,
			CapExemptionRent:     decimal.RequireFromString("879.66"),
		},
		RentTable: []RentRow{
			{Points: 40, Rent: decimal.RequireFromString("239.53")},
			{Points: 41, Rent: decimal.RequireFromString("245.94")},
			{Points: 100, Rent: decimal.RequireFromString("624.31")},
			{Points: 143, Rent: decimal.RequireFromString("900.07")},
			{Points: 186, Rent: decimal.RequireFromString("1184.82")},
		},
	}
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testRules())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func intPtr(v int) *int { return &v }

func money(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// studio is a small independent unit used as the baseline in several tests.
func studio() *IndependentUnit {
	return &IndependentUnit{
		Common: Common{
			PrivateArea: 25,
			EnergyLabel: LabelG,
			Kitchen: Kitchen{
				Counter:    CounterUnder1m,
				Appliances: []Appliance{ApplianceGasHob, ApplianceFridge},
			},
			Sanitary: Sanitary{
				Toilet:     ToiletStandard,
				Facilities: []Facility{FacilityWashbasin, FacilityShower},
			},
			Heating: Heating{Type: HeatingCentral, HeatedRooms: 1},
		},
	}
}

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	d := a - b
	return d < epsilon && d > -epsilon
}
