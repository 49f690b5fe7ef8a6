package wws

import (
	"errors"
	"fmt"
	"math"

	"rentcheck_backend/platform/apperr"
)

// ErrUnknownVariant is returned when an enumeration value has no entry in the
// rule set. It indicates a programming error, never a scoring of zero.
var ErrUnknownVariant = errors.New("unknown variant")

// ErrInvalidSharers is returned when a sharer count below two reaches a calculator.
var ErrInvalidSharers = errors.New("sharer count must be at least 2")

// Upper bounds for measured input. Anything larger is a typo, and unbounded
// values would overflow the point total.
const (
	MaxArea  = 100_000
	MaxCount = 1_000
)

func unknownVariant(kind string, value any) error {
	return apperr.Wrap(apperr.KindInternal, fmt.Sprintf("%s %q is not in the rule set", kind, value), ErrUnknownVariant)
}

type fieldErrors []apperr.FieldError

func (f *fieldErrors) add(field, message string) {
	*f = append(*f, apperr.FieldError{Field: field, Message: message})
}

// Validate rejects incomplete or out-of-range input. It never substitutes defaults:
// every problem is reported and the unit is not scored.
func Validate(unit Unit) error {
	if unit == nil {
		return apperr.Validation("unit is required").WithOp("wws.Validate")
	}

	var errs fieldErrors
	c := unit.common()

	if !(c.PrivateArea > 0) {
		errs.add("privateArea", "must be greater than 0")
	} else {
		checkArea(&errs, "privateArea", c.PrivateArea)
	}
	if !c.EnergyLabel.valid() {
		errs.add("energyLabel", fmt.Sprintf("unknown energy label %q", c.EnergyLabel))
	}
	validateKitchen(&errs, c.Kitchen)
	validateSanitary(&errs, c.Sanitary)
	validateHeating(&errs, c.Heating)
	checkArea(&errs, "outdoor.privateArea", c.PrivateOutdoorArea)
	if c.CurrentRent != nil && c.CurrentRent.IsNegative() {
		errs.add("currentRent", "must not be negative")
	}

	switch u := unit.(type) {
	case *IndependentUnit:
		if u.Valuation != nil && u.Valuation.IsNegative() {
			errs.add("valuation", "must not be negative")
		}
	case *SharedUnit:
		checkArea(&errs, "sharedArea", u.SharedArea)
		validateSharers(&errs, "kitchen.sharers", u.KitchenSharers)
		validateSharers(&errs, "sanitary.sharers", u.SanitarySharers)
		if u.SharedOutdoor != nil {
			checkArea(&errs, "outdoor.sharedArea", u.SharedOutdoor.Area)
			checkCount(&errs, "outdoor.sharers", u.SharedOutdoor.Sharers, 2)
		}
	default:
		errs.add("housingType", fmt.Sprintf("unsupported unit type %T", unit))
	}

	if len(errs) > 0 {
		return apperr.Validation("invalid rental unit").WithOp("wws.Validate").WithDetails([]apperr.FieldError(errs))
	}
	return nil
}

func validateKitchen(errs *fieldErrors, k Kitchen) {
	if !k.Counter.valid() {
		errs.add("kitchen.counterLength", fmt.Sprintf("unknown counter length %q", k.Counter))
	}
	for _, a := range k.Appliances {
		if !a.valid() {
			errs.add("kitchen.appliances", fmt.Sprintf("unknown appliance %q", a))
		}
	}
}

func validateSanitary(errs *fieldErrors, s Sanitary) {
	if !s.Toilet.valid() {
		errs.add("sanitary.toiletType", fmt.Sprintf("unknown toilet type %q", s.Toilet))
	}
	for _, f := range s.Facilities {
		if !f.valid() {
			errs.add("sanitary.facilities", fmt.Sprintf("unknown facility %q", f))
		}
	}
}

func validateHeating(errs *fieldErrors, h Heating) {
	if !h.Type.valid() {
		errs.add("heating.type", fmt.Sprintf("unknown heating type %q", h.Type))
	}
	checkCount(errs, "heating.heatedRooms", h.HeatedRooms, 1)
	checkCount(errs, "heating.thermostaticValves", h.ThermostaticValves, 0)
}

func validateSharers(errs *fieldErrors, field string, sharers *int) {
	if sharers != nil {
		checkCount(errs, field, *sharers, 2)
	}
}

// checkArea rejects NaN, infinities and values outside [0, MaxArea].
func checkArea(errs *fieldErrors, field string, v float64) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		errs.add(field, "must be a finite number")
	case v < 0:
		errs.add(field, "must not be negative")
	case v > MaxArea:
		errs.add(field, fmt.Sprintf("must be at most %d", MaxArea))
	}
}

func checkCount(errs *fieldErrors, field string, v, least int) {
	switch {
	case v < least && least == 0:
		errs.add(field, "must not be negative")
	case v < least:
		errs.add(field, fmt.Sprintf("must be at least %d", least))
	case v > MaxCount:
		errs.add(field, fmt.Sprintf("must be at most %d", MaxCount))
	}
}
