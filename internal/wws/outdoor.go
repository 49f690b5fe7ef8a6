package wws

// OutdoorScore is the outdoor space score.
type OutdoorScore struct {
	Private float64 `json:"private"`
	Shared  float64 `json:"shared"`
	Sharers int     `json:"sharers"`
	Points  float64 `json:"points"`
}

// OutdoorPoints scores private outdoor space and, for shared housing, the
// sharer's part of shared outdoor space. An empty area earns no base credit.
func OutdoorPoints(privateArea float64, shared *SharedOutdoor, rules *RuleSet) (OutdoorScore, error) {
	score := OutdoorScore{Private: outdoorArea(privateArea, rules)}

	if shared != nil && shared.Area > 0 {
		sharers := shared.Sharers
		part, err := Share(outdoorArea(shared.Area, rules), &sharers)
		if err != nil {
			return OutdoorScore{}, err
		}
		score.Shared = part
		score.Sharers = sharers
	}

	score.Points = score.Private + score.Shared
	return score, nil
}

func outdoorArea(area float64, rules *RuleSet) float64 {
	if area <= 0 {
		return 0
	}
	return rules.Outdoor.Base + rules.Outdoor.PerM2*area
}
