package wws

// HeatingScore is the heated-room and thermostatic valve score.
type HeatingScore struct {
	Rooms  float64 `json:"rooms"`
	Valves float64 `json:"valves"`
	Points float64 `json:"points"`
}

// HeatingPoints multiplies the per-room rate of the heating type by the heated
// rooms and adds the valve bonus.
func HeatingPoints(h Heating, rules *RuleSet) (HeatingScore, error) {
	rate, ok := rules.Heating.PerRoom[h.Type]
	if !ok {
		return HeatingScore{}, unknownVariant("heating type", h.Type)
	}
	rooms := rate * float64(h.HeatedRooms)
	var valves float64
	if h.ThermostaticValves > 0 {
		valves = rules.Heating.PerValve * float64(h.ThermostaticValves)
	}
	return HeatingScore{Rooms: rooms, Valves: valves, Points: rooms + valves}, nil
}
