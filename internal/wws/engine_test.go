package wws

import (
	"reflect"
	"testing"

	"rentcheck_backend/platform/apperr"
)

func TestAssess_IndependentStudio(t *testing.T) {
	e := testEngine(t)

	result, err := e.Assess(studio())
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}

	b := result.Breakdown
	checks := []struct {
		name      string
		got, want float64
	}{
		{"kitchen", b.Kitchen, 1.5},
		{"sanitary", b.Sanitary, 10},
		{"surface", b.Surface, 25},
		{"energy", b.Energy, 0},
		{"outdoor", b.Outdoor, 0},
		{"valuation", b.Valuation, 0},
		{"total", b.TotalPoints, 36.5},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
	if b.TotalPointsRounded != 37 {
		t.Errorf("expected rounded total 37, got %d", b.TotalPointsRounded)
	}
	if b.SanitaryDetail.Heating.Points != 2 {
		t.Errorf("expected heating 2 inside sanitary, got %v", b.SanitaryDetail.Heating.Points)
	}
	if result.Regime != RegimeRegulated {
		t.Fatalf("expected regulated, got %s", result.Regime)
	}
	if result.MaxRent == nil || !result.MaxRent.LessThan(*money("700")) {
		t.Fatalf("expected max rent below 700, got %v", result.MaxRent)
	}
	if result.Verdict != nil {
		t.Fatalf("expected no verdict without current rent")
	}
	if _, ok := result.IsOverpaying(); ok {
		t.Fatalf("expected IsOverpaying to report no verdict")
	}
}

func TestAssess_OverpayingStudio(t *testing.T) {
	e := testEngine(t)

	base, err := e.Assess(studio())
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}

	unit := studio()
	rent := base.MaxRent.Add(*money("50"))
	unit.CurrentRent = &rent

	result, err := e.Assess(unit)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	overpaying, ok := result.IsOverpaying()
	if !ok || !overpaying {
		t.Fatalf("expected overpaying verdict, got %+v", result.Verdict)
	}
	if !result.Verdict.Overpayment.Equal(*money("50")) {
		t.Fatalf("expected overpayment 50, got %s", result.Verdict.Overpayment)
	}
}

func TestAssess_SharedKitchenDividedBySharers(t *testing.T) {
	e := testEngine(t)

	unit := &SharedUnit{
		Common: Common{
			PrivateArea: 14,
			EnergyLabel: LabelC,
			Kitchen: Kitchen{
				Counter:    CounterUnder1m,
				Appliances: []Appliance{ApplianceInductionHob, ApplianceDishwasher, ApplianceFridge},
			},
			Sanitary: Sanitary{Toilet: ToiletStandard, Facilities: []Facility{FacilityShower}},
			Heating:  Heating{Type: HeatingCentral, HeatedRooms: 1},
		},
		SharedArea:      20,
		KitchenSharers:  intPtr(3),
		SanitarySharers: intPtr(3),
	}

	result, err := e.Assess(unit)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if !almostEqual(result.Breakdown.Kitchen, (1.75+1.5+1.0)/3) {
		t.Fatalf("expected kitchen (1.75+1.5+1.0)/3, got %v", result.Breakdown.Kitchen)
	}
	if !almostEqual(result.Breakdown.Sanitary, 7.0/3+2) {
		t.Fatalf("expected shared sanitary 7/3 plus private heating 2, got %v", result.Breakdown.Sanitary)
	}
	if !almostEqual(result.Breakdown.Surface, 14+10) {
		t.Fatalf("expected surface 24, got %v", result.Breakdown.Surface)
	}
	if result.HousingType != HousingShared || result.Breakdown.Valuation != 0 {
		t.Fatalf("expected shared unit without valuation points, got %+v", result.Breakdown)
	}
}

func TestAssess_PrivateKitchenInSharedUnitNotDivided(t *testing.T) {
	e := testEngine(t)

	unit := &SharedUnit{Common: studio().Common}
	result, err := e.Assess(unit)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if result.Breakdown.Kitchen != 1.5 {
		t.Fatalf("expected undivided kitchen 1.5, got %v", result.Breakdown.Kitchen)
	}
}

func TestAssess_LiberalizedHasNoMaxRent(t *testing.T) {
	e := testEngine(t)

	unit := studio()
	unit.PrivateArea = 120
	unit.EnergyLabel = LabelA4
	unit.CurrentRent = money("2100")

	result, err := e.Assess(unit)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if result.Breakdown.TotalPoints < 187 {
		t.Fatalf("expected at least 187 points, got %v", result.Breakdown.TotalPoints)
	}
	if result.Regime != RegimeLiberalized {
		t.Fatalf("expected liberalized, got %s", result.Regime)
	}
	if result.MaxRent != nil || result.Verdict != nil {
		t.Fatalf("expected no max rent and no verdict, got %v / %+v", result.MaxRent, result.Verdict)
	}
}

func TestAssess_ValuationCapAndExemption(t *testing.T) {
	e := testEngine(t)

	unit := studio()
	unit.Valuation = money("400000")

	capped, err := e.Assess(unit)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if !capped.Breakdown.ValuationCapApplied || !almostEqual(capped.Breakdown.Valuation, 36.5/2) {
		t.Fatalf("expected valuation capped at 18.25, got %+v", capped.Breakdown)
	}

	unit.CurrentRent = money("900")
	exempt, err := e.Assess(unit)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if exempt.Breakdown.ValuationCapApplied || exempt.Breakdown.Valuation != 28 {
		t.Fatalf("expected uncapped valuation 28, got %+v", exempt.Breakdown)
	}
}

func TestAssess_Deterministic(t *testing.T) {
	e := testEngine(t)

	unit := studio()
	unit.Valuation = money("250000")
	unit.CurrentRent = money("640")

	first, err := e.Assess(unit)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := e.Assess(unit)
		if err != nil {
			t.Fatalf("Assess: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from the first run", i)
		}
	}
}

func TestAssess_NonNegativeAndMonotonicInArea(t *testing.T) {
	e := testEngine(t)

	prevSurface, prevTotal := -1.0, -1.0
	for area := 1.0; area <= 150; area++ {
		unit := studio()
		unit.PrivateArea = area
		unit.Valuation = money("300000")
		unit.Sanitary.ToiletInBathroom = true

		result, err := e.Assess(unit)
		if err != nil {
			t.Fatalf("area %v: %v", area, err)
		}
		b := result.Breakdown
		for name, v := range map[string]float64{
			"kitchen": b.Kitchen, "sanitary": b.Sanitary, "surface": b.Surface,
			"energy": b.Energy, "outdoor": b.Outdoor, "valuation": b.Valuation, "total": b.TotalPoints,
		} {
			if v < 0 {
				t.Fatalf("area %v: %s is negative: %v", area, name, v)
			}
		}
		if b.Surface < prevSurface || b.TotalPoints < prevTotal {
			t.Fatalf("area %v: points decreased", area)
		}
		prevSurface, prevTotal = b.Surface, b.TotalPoints
	}
}

func TestAssess_UnknownEnergyEqualsWorstLabel(t *testing.T) {
	e := testEngine(t)

	unknown := studio()
	unknown.EnergyLabel = LabelUnknown
	worst := studio()
	worst.EnergyLabel = DefinedLabels[len(DefinedLabels)-1]

	a, err := e.Assess(unknown)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	b, err := e.Assess(worst)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if a.Breakdown.TotalPoints != b.Breakdown.TotalPoints || !a.MaxRent.Equal(*b.MaxRent) {
		t.Fatalf("expected unknown label to score as the worst label")
	}
}

func TestAssess_InvalidInputRejected(t *testing.T) {
	e := testEngine(t)

	unit := studio()
	unit.PrivateArea = 0

	_, err := e.Assess(unit)
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNewEngine_RejectsIncompleteRules(t *testing.T) {
	rules := testRules()
	delete(rules.Kitchen.Appliances, ApplianceDishwasher)

	if _, err := NewEngine(rules); err == nil {
		t.Fatalf("expected rule set without dishwasher points to be rejected")
	}
}
