package wws

// KitchenScore is the kitchen sub-score with its parts.
type KitchenScore struct {
	Counter    float64 `json:"counter"`
	Appliances float64 `json:"appliances"`
	// Raw is the unshared total before division.
	Raw float64 `json:"raw"`
	// Sharers is 0 for a private kitchen.
	Sharers int     `json:"sharers"`
	Points  float64 `json:"points"`
}

// KitchenPoints scores the counter tier and built-in appliances. Each appliance
// type counts once however often it is listed.
func KitchenPoints(k Kitchen, sharers *int, rules *RuleSet) (KitchenScore, error) {
	counter, ok := rules.Kitchen.Counter[k.Counter]
	if !ok {
		return KitchenScore{}, unknownVariant("counter length", k.Counter)
	}

	var appliances float64
	seen := make(map[Appliance]struct{}, len(k.Appliances))
	for _, a := range k.Appliances {
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		points, ok := rules.Kitchen.Appliances[a]
		if !ok {
			return KitchenScore{}, unknownVariant("appliance", a)
		}
		appliances += points
	}

	raw := counter + appliances
	points, err := Share(raw, sharers)
	if err != nil {
		return KitchenScore{}, err
	}

	return KitchenScore{
		Counter:    counter,
		Appliances: appliances,
		Raw:        raw,
		Sharers:    sharerCount(sharers),
		Points:     points,
	}, nil
}
