package wws

// SurfaceScore is the living area score.
type SurfaceScore struct {
	Private float64 `json:"private"`
	Shared  float64 `json:"shared"`
	Points  float64 `json:"points"`
}

// SurfacePoints converts private area at full credit and communal area at the
// partial rate of the rule set. Communal area is not divided by sharers; the
// partial rate already accounts for it.
func SurfacePoints(privateArea, sharedArea float64, rules *RuleSet) SurfaceScore {
	private := privateArea * rules.Surface.PerPrivateM2
	shared := sharedArea * rules.Surface.PerSharedM2
	return SurfaceScore{Private: private, Shared: shared, Points: private + shared}
}
