package wws

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RuleSet holds the versioned constants of one edition of the points system.
// The legal standard is republished every year, so every table is keyed by Year.
type RuleSet struct {
	Year          int    `yaml:"year" json:"year"`
	EffectiveFrom string `yaml:"effective_from" json:"effectiveFrom"`

	Kitchen   KitchenRules   `yaml:"kitchen" json:"kitchen"`
	Sanitary  SanitaryRules  `yaml:"sanitary" json:"sanitary"`
	Heating   HeatingRules   `yaml:"heating" json:"heating"`
	Surface   SurfaceRules   `yaml:"surface" json:"surface"`
	Energy    EnergyRules    `yaml:"energy" json:"energy"`
	Outdoor   OutdoorRules   `yaml:"outdoor" json:"outdoor"`
	Valuation ValuationRules `yaml:"valuation" json:"valuation"`
	Regime    RegimeRules    `yaml:"regime" json:"regime"`
	RentTable []RentRow      `yaml:"rent_table" json:"rentTable"`
}

type KitchenRules struct {
	Counter    map[CounterLength]float64 `yaml:"counter" json:"counter"`
	Appliances map[Appliance]float64     `yaml:"appliances" json:"appliances"`
}

type SanitaryRules struct {
	Toilets                 map[ToiletType]float64 `yaml:"toilets" json:"toilets"`
	ToiletInBathroomPenalty float64                `yaml:"toilet_in_bathroom_penalty" json:"toiletInBathroomPenalty"`
	Facilities              map[Facility]float64   `yaml:"facilities" json:"facilities"`
}

type HeatingRules struct {
	PerRoom  map[HeatingType]float64 `yaml:"per_room" json:"perRoom"`
	PerValve float64                 `yaml:"per_valve" json:"perValve"`
}

type SurfaceRules struct {
	PerPrivateM2 float64 `yaml:"per_private_m2" json:"perPrivateM2"`
	// PerSharedM2 is the partial credit for communal area in shared housing.
	PerSharedM2 float64 `yaml:"per_shared_m2" json:"perSharedM2"`
}

type EnergyRules struct {
	Labels map[EnergyLabel]float64 `yaml:"labels" json:"labels"`
	// UnknownAs names the defined label an unknown label scores as.
	UnknownAs EnergyLabel `yaml:"unknown_as" json:"unknownAs"`
}

type OutdoorRules struct {
	Base  float64 `yaml:"base" json:"base"`
	PerM2 float64 `yaml:"per_m2" json:"perM2"`
}

// ValuationBracket awards Points to assessed values from From upwards,
// until the next bracket starts.
type ValuationBracket struct {
	From   decimal.Decimal `yaml:"from" json:"from"`
	Points float64         `yaml:"points" json:"points"`
}

type ValuationRules struct {
	Brackets []ValuationBracket `yaml:"brackets" json:"brackets"`
	// CapDivisor bounds valuation points to (total without valuation) / CapDivisor,
	// which is one third of the total for a divisor of 2.
	CapDivisor float64 `yaml:"cap_divisor" json:"capDivisor"`
}

type RegimeRules struct {
	// LiberalizationPoints is the first point total outside rent control.
	LiberalizationPoints float64 `yaml:"liberalization_points" json:"liberalizationPoints"`
	// CapExemptionRent waives the valuation cap when the current rent exceeds it.
	CapExemptionRent decimal.Decimal `yaml:"cap_exemption_rent" json:"capExemptionRent"`
}

// RentRow maps a whole point total to the maximum basic rent.
type RentRow struct {
	Points int             `yaml:"points" json:"points"`
	Rent   decimal.Decimal `yaml:"rent" json:"rent"`
}

// Check verifies the rule set is complete: every variant has a value, tables are
// non-empty and monotonic. Calculators rely on this and never fall back to zero.
func (r *RuleSet) Check() error {
	if r == nil {
		return fmt.Errorf("rule set is nil")
	}
	if r.Year <= 0 {
		return fmt.Errorf("rule set year must be positive, got %d", r.Year)
	}
	if err := checkTable("kitchen.counter", r.Kitchen.Counter, CounterLengths); err != nil {
		return err
	}
	if err := checkTable("kitchen.appliances", r.Kitchen.Appliances, Appliances); err != nil {
		return err
	}
	if err := checkTable("sanitary.toilets", r.Sanitary.Toilets, ToiletTypes); err != nil {
		return err
	}
	if err := checkTable("sanitary.facilities", r.Sanitary.Facilities, Facilities); err != nil {
		return err
	}
	if err := checkTable("heating.per_room", r.Heating.PerRoom, HeatingTypes); err != nil {
		return err
	}
	if err := checkTable("energy.labels", r.Energy.Labels, DefinedLabels); err != nil {
		return err
	}
	if _, ok := r.Energy.Labels[r.Energy.UnknownAs]; !ok || r.Energy.UnknownAs == LabelUnknown {
		return fmt.Errorf("energy.unknown_as must name a defined label, got %q", r.Energy.UnknownAs)
	}
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"sanitary.toilet_in_bathroom_penalty", r.Sanitary.ToiletInBathroomPenalty},
		{"heating.per_valve", r.Heating.PerValve},
		{"surface.per_private_m2", r.Surface.PerPrivateM2},
		{"surface.per_shared_m2", r.Surface.PerSharedM2},
		{"outdoor.base", r.Outdoor.Base},
		{"outdoor.per_m2", r.Outdoor.PerM2},
	} {
		if v.value < 0 {
			return fmt.Errorf("%s must not be negative", v.name)
		}
	}
	if r.Valuation.CapDivisor <= 0 {
		return fmt.Errorf("valuation.cap_divisor must be positive")
	}
	if err := checkBrackets(r.Valuation.Brackets); err != nil {
		return err
	}
	if r.Regime.LiberalizationPoints <= 0 {
		return fmt.Errorf("regime.liberalization_points must be positive")
	}
	if r.Regime.CapExemptionRent.IsNegative() {
		return fmt.Errorf("regime.cap_exemption_rent must not be negative")
	}
	return checkRentTable(r.RentTable)
}

func checkTable[K comparable](name string, table map[K]float64, variants []K) error {
	for _, v := range variants {
		points, ok := table[v]
		if !ok {
			return fmt.Errorf("%s: no points for %v", name, v)
		}
		if points < 0 {
			return fmt.Errorf("%s: negative points for %v", name, v)
		}
	}
	if len(table) != len(variants) {
		return fmt.Errorf("%s: %d entries for %d known variants", name, len(table), len(variants))
	}
	return nil
}

func checkBrackets(brackets []ValuationBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("valuation.brackets must not be empty")
	}
	if !brackets[0].From.IsZero() {
		return fmt.Errorf("valuation.brackets must start at 0")
	}
	for i := 1; i < len(brackets); i++ {
		if !brackets[i].From.GreaterThan(brackets[i-1].From) {
			return fmt.Errorf("valuation.brackets[%d]: bounds must increase", i)
		}
		if brackets[i].Points < brackets[i-1].Points {
			return fmt.Errorf("valuation.brackets[%d]: points must not decrease", i)
		}
	}
	return nil
}

func checkRentTable(rows []RentRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("rent_table must not be empty")
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Points <= rows[i-1].Points {
			return fmt.Errorf("rent_table[%d]: points must increase", i)
		}
		if rows[i].Rent.LessThan(rows[i-1].Rent) {
			return fmt.Errorf("rent_table[%d]: rent must not decrease", i)
		}
	}
	return nil
}
