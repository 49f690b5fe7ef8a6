package wws

import "github.com/shopspring/decimal"

// Classify places the unit outside rent control once the total meets the
// liberalization threshold of the rule set.
func Classify(totalPoints float64, rules *RuleSet) Regime {
	if totalPoints >= rules.Regime.LiberalizationPoints {
		return RegimeLiberalized
	}
	return RegimeRegulated
}

// MaxRent returns the rent of the last table row at or below totalPoints.
// Totals outside the table clamp to its first or last row.
func MaxRent(totalPoints float64, rules *RuleSet) decimal.Decimal {
	rows := rules.RentTable
	rent := rows[0].Rent
	for _, row := range rows {
		if float64(row.Points) > totalPoints {
			break
		}
		rent = row.Rent
	}
	return rent
}
