package wws

import "github.com/shopspring/decimal"

// Verdict compares the current rent with the legal maximum.
type Verdict struct {
	IsOverpaying bool `json:"isOverpaying"`
	// Overpayment is the monthly amount above the maximum, zero when not overpaying.
	Overpayment decimal.Decimal `json:"overpayment"`
}

// EvaluateOverpayment returns nil when there is no current rent or no maximum.
func EvaluateOverpayment(maxRent, currentRent *decimal.Decimal) *Verdict {
	if maxRent == nil || currentRent == nil {
		return nil
	}
	if currentRent.GreaterThan(*maxRent) {
		return &Verdict{IsOverpaying: true, Overpayment: currentRent.Sub(*maxRent)}
	}
	return &Verdict{IsOverpaying: false, Overpayment: decimal.Zero}
}
