package wws

import "math"

// SanitaryScore is the toilet and washing facility score. Heating is scored by
// HeatingPoints and folded into Points for the breakdown.
type SanitaryScore struct {
	Toilet     float64 `json:"toilet"`
	Facilities float64 `json:"facilities"`
	// Raw is toilet plus facilities before sharing.
	Raw     float64      `json:"raw"`
	Sharers int          `json:"sharers"`
	Shared  float64      `json:"shared"`
	Heating HeatingScore `json:"heating"`
	Points  float64      `json:"points"`
}

// SanitaryPoints scores the toilet and washing facilities and divides them over
// the sharers when the facilities are shared.
func SanitaryPoints(s Sanitary, sharers *int, rules *RuleSet) (SanitaryScore, error) {
	toilet, ok := rules.Sanitary.Toilets[s.Toilet]
	if !ok {
		return SanitaryScore{}, unknownVariant("toilet type", s.Toilet)
	}
	if s.ToiletInBathroom {
		toilet = math.Max(0, toilet-rules.Sanitary.ToiletInBathroomPenalty)
	}

	var facilities float64
	seen := make(map[Facility]struct{}, len(s.Facilities))
	for _, f := range s.Facilities {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		points, ok := rules.Sanitary.Facilities[f]
		if !ok {
			return SanitaryScore{}, unknownVariant("facility", f)
		}
		facilities += points
	}

	raw := toilet + facilities
	shared, err := Share(raw, sharers)
	if err != nil {
		return SanitaryScore{}, err
	}

	return SanitaryScore{
		Toilet:     toilet,
		Facilities: facilities,
		Raw:        raw,
		Sharers:    sharerCount(sharers),
		Shared:     shared,
		Points:     shared,
	}, nil
}
