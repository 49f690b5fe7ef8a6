package service

import (
	"sort"

	"rentcheck_backend/internal/rentcheck/transport"
	"rentcheck_backend/internal/wws"
	"rentcheck_backend/platform/apperr"
)

// ToUnit maps a validated request onto the wws unit union. Shared-only fields on
// an independent unit, and valuation on a shared unit, are rejected.
func ToUnit(req transport.AssessRequest) (wws.Unit, error) {
	common := wws.Common{
		PrivateArea: req.PrivateArea,
		EnergyLabel: wws.EnergyLabel(req.EnergyLabel),
		Kitchen: wws.Kitchen{
			Counter:    wws.CounterLength(req.Kitchen.CounterLength),
			Appliances: convert[wws.Appliance](req.Kitchen.Appliances),
		},
		Sanitary: wws.Sanitary{
			Toilet:           wws.ToiletType(req.Sanitary.ToiletType),
			ToiletInBathroom: req.Sanitary.ToiletInBathroom,
			Facilities:       convert[wws.Facility](req.Sanitary.Facilities),
		},
		Heating: wws.Heating{
			Type:               wws.HeatingType(req.Heating.Type),
			HeatedRooms:        req.Heating.HeatedRooms,
			ThermostaticValves: req.Heating.ThermostaticValves,
		},
		PrivateOutdoorArea: req.Outdoor.PrivateArea,
		CurrentRent:        req.CurrentRent,
	}

	var errs []apperr.FieldError
	reject := func(field, message string) {
		errs = append(errs, apperr.FieldError{Field: field, Message: message})
	}

	var unit wws.Unit
	switch wws.HousingType(req.HousingType) {
	case wws.HousingIndependent:
		for field, set := range map[string]bool{
			"kitchen.sharers":    req.Kitchen.Sharers != nil,
			"sanitary.sharers":   req.Sanitary.Sharers != nil,
			"sharedArea":         req.SharedArea != nil,
			"outdoor.sharedArea": req.Outdoor.SharedArea != nil,
			"outdoor.sharers":    req.Outdoor.Sharers != nil,
		} {
			if set {
				reject(field, "only allowed for shared housing")
			}
		}
		unit = &wws.IndependentUnit{Common: common, Valuation: req.Valuation}

	case wws.HousingShared:
		if req.Valuation != nil {
			reject("valuation", "only allowed for independent housing")
		}
		shared := &wws.SharedUnit{
			Common:          common,
			KitchenSharers:  req.Kitchen.Sharers,
			SanitarySharers: req.Sanitary.Sharers,
		}
		if req.SharedArea != nil {
			shared.SharedArea = *req.SharedArea
		}
		switch {
		case req.Outdoor.SharedArea != nil && req.Outdoor.Sharers != nil:
			shared.SharedOutdoor = &wws.SharedOutdoor{Area: *req.Outdoor.SharedArea, Sharers: *req.Outdoor.Sharers}
		case req.Outdoor.SharedArea != nil:
			reject("outdoor.sharers", "is required with outdoor.sharedArea")
		case req.Outdoor.Sharers != nil:
			reject("outdoor.sharedArea", "is required with outdoor.sharers")
		}
		unit = shared

	default:
		reject("housingType", "must be one of: independent shared")
	}

	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
		return nil, apperr.Validation("invalid request").WithOp("rentcheck.ToUnit").WithDetails(errs)
	}
	return unit, nil
}

func convert[T ~string](values []string) []T {
	if values == nil {
		return nil
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}
