package wws

// EnergyPoints looks up the label. Unknown scores as the label the rule set
// names in UnknownAs, which is the worst defined grade.
func EnergyPoints(label EnergyLabel, rules *RuleSet) (float64, error) {
	resolved := label
	if label == LabelUnknown {
		resolved = rules.Energy.UnknownAs
	}
	points, ok := rules.Energy.Labels[resolved]
	if !ok {
		return 0, unknownVariant("energy label", label)
	}
	return points, nil
}
