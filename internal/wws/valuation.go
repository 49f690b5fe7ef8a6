package wws

import "github.com/shopspring/decimal"

// ValuationPoints converts an assessed value to raw points with the bracket
// table. The cap against the other categories is applied by Aggregate.
func ValuationPoints(value *decimal.Decimal, rules *RuleSet) float64 {
	if value == nil || !value.IsPositive() {
		return 0
	}
	var points float64
	for _, b := range rules.Valuation.Brackets {
		if value.LessThan(b.From) {
			break
		}
		points = b.Points
	}
	return points
}
