package wws

import "github.com/shopspring/decimal"

// Unit is a fully resolved rental unit. It is either an IndependentUnit or a
// SharedUnit; fields that only make sense for shared housing live on SharedUnit.
type Unit interface {
	HousingType() HousingType
	common() *Common
}

// Common holds the facts every unit carries regardless of housing type.
type Common struct {
	// PrivateArea is the private living area in m².
	PrivateArea float64
	EnergyLabel EnergyLabel
	Kitchen     Kitchen
	Sanitary    Sanitary
	Heating     Heating
	// PrivateOutdoorArea is the private balcony, garden or terrace area in m².
	PrivateOutdoorArea float64
	// CurrentRent is the basic rent the occupant pays now, if known.
	CurrentRent *decimal.Decimal
}

// Kitchen describes the kitchen facilities.
type Kitchen struct {
	Counter    CounterLength
	Appliances []Appliance
}

// Sanitary describes toilet and washing facilities.
type Sanitary struct {
	Toilet           ToiletType
	ToiletInBathroom bool
	Facilities       []Facility
}

// Heating describes the heating installation.
type Heating struct {
	Type               HeatingType
	HeatedRooms        int
	ThermostaticValves int
}

// IndependentUnit is a self-contained dwelling.
type IndependentUnit struct {
	Common
	// Valuation is the assessed (WOZ) value in euro, if supplied.
	Valuation *decimal.Decimal
}

// SharedUnit is a room in a dwelling whose facilities may be shared with other households.
// A nil sharer count means the facility is private to this unit.
type SharedUnit struct {
	Common
	// SharedArea is the communal living area in m².
	SharedArea      float64
	KitchenSharers  *int
	SanitarySharers *int
	SharedOutdoor   *SharedOutdoor
}

// SharedOutdoor is outdoor space shared by a number of households.
type SharedOutdoor struct {
	Area    float64
	Sharers int
}

func (u *IndependentUnit) HousingType() HousingType { return HousingIndependent }
func (u *IndependentUnit) common() *Common          { return &u.Common }

func (u *SharedUnit) HousingType() HousingType { return HousingShared }
func (u *SharedUnit) common() *Common          { return &u.Common }

var (
	_ Unit = (*IndependentUnit)(nil)
	_ Unit = (*SharedUnit)(nil)
)
