package wws

// HousingType distinguishes independent dwellings from rooms that share facilities.
type HousingType string

const (
	HousingIndependent HousingType = "independent"
	HousingShared      HousingType = "shared"
)

// EnergyLabel is an EP-Online energy class, ordered best to worst, plus Unknown.
type EnergyLabel string

const (
	LabelA4      EnergyLabel = "A++++"
	LabelA3      EnergyLabel = "A+++"
	LabelA2      EnergyLabel = "A++"
	LabelA1      EnergyLabel = "A+"
	LabelA       EnergyLabel = "A"
	LabelB       EnergyLabel = "B"
	LabelC       EnergyLabel = "C"
	LabelD       EnergyLabel = "D"
	LabelE       EnergyLabel = "E"
	LabelF       EnergyLabel = "F"
	LabelG       EnergyLabel = "G"
	LabelUnknown EnergyLabel = "unknown"
)

// DefinedLabels lists every graded label from best to worst. Unknown is not a grade.
var DefinedLabels = []EnergyLabel{
	LabelA4, LabelA3, LabelA2, LabelA1, LabelA, LabelB, LabelC, LabelD, LabelE, LabelF, LabelG,
}

// CounterLength is the kitchen counter tier, measured including sink and hob.
type CounterLength string

const (
	CounterUnder1m  CounterLength = "<1m"
	Counter1To2m    CounterLength = "1-2m"
	CounterAtLeast2 CounterLength = ">=2m"
)

var CounterLengths = []CounterLength{CounterUnder1m, Counter1To2m, CounterAtLeast2}

// Appliance is a built-in kitchen appliance.
type Appliance string

const (
	ApplianceInductionHob  Appliance = "hob-induction"
	ApplianceCeramicHob    Appliance = "hob-ceramic"
	ApplianceGasHob        Appliance = "hob-gas"
	ApplianceExtractorHood Appliance = "extractor-hood"
	ApplianceFridge        Appliance = "fridge"
	ApplianceFreezer       Appliance = "freezer"
	ApplianceElectricOven  Appliance = "oven-electric"
	ApplianceCombiOven     Appliance = "oven-combi"
	ApplianceDishwasher    Appliance = "dishwasher"
)

var Appliances = []Appliance{
	ApplianceInductionHob, ApplianceCeramicHob, ApplianceGasHob, ApplianceExtractorHood,
	ApplianceFridge, ApplianceFreezer, ApplianceElectricOven, ApplianceCombiOven, ApplianceDishwasher,
}

// ToiletType is the kind of toilet in the unit.
type ToiletType string

const (
	ToiletNone        ToiletType = "none"
	ToiletStandard    ToiletType = "standard"
	ToiletHanging     ToiletType = "hanging"
	ToiletSanibroyeur ToiletType = "sanibroyeur"
)

var ToiletTypes = []ToiletType{ToiletNone, ToiletStandard, ToiletHanging, ToiletSanibroyeur}

// Facility is a washing or bathing facility. Facilities are independently creditable.
type Facility string

const (
	FacilityWashbasin          Facility = "washbasin"
	FacilityMultiWashbasin     Facility = "multi-washbasin"
	FacilityShower             Facility = "shower"
	FacilityBath               Facility = "bath"
	FacilityBathSeparateShower Facility = "bath-separate-shower"
)

var Facilities = []Facility{
	FacilityWashbasin, FacilityMultiWashbasin, FacilityShower, FacilityBath, FacilityBathSeparateShower,
}

// HeatingType is the heating installation serving the heated rooms.
type HeatingType string

const (
	HeatingCentral   HeatingType = "central"
	HeatingDistrict  HeatingType = "district"
	HeatingGasHeater HeatingType = "gas-heater"
)

var HeatingTypes = []HeatingType{HeatingCentral, HeatingDistrict, HeatingGasHeater}

// Regime is the outcome of classification.
type Regime string

const (
	RegimeRegulated   Regime = "regulated"
	RegimeLiberalized Regime = "liberalized"
)

func (l EnergyLabel) valid() bool {
	if l == LabelUnknown {
		return true
	}
	return contains(DefinedLabels, l)
}

func (c CounterLength) valid() bool { return contains(CounterLengths, c) }
func (a Appliance) valid() bool     { return contains(Appliances, a) }
func (t ToiletType) valid() bool    { return contains(ToiletTypes, t) }
func (f Facility) valid() bool      { return contains(Facilities, f) }
func (h HeatingType) valid() bool   { return contains(HeatingTypes, h) }

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
