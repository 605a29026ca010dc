package models

import "github.com/shopspring/decimal"

// Status is the billing lifecycle shared by freights and purchases.
// Records only move from pending to complete.
type Status string

const (
	StatusPending  Status = "pending"
	StatusComplete Status = "complete"
)

// MoneyPlaces is the rounding applied to derived totals
const MoneyPlaces = 2

// Total multiplies the given factors and rounds to cents. A zero factor
// (including an operand the caller never supplied) yields zero.
func Total(factors ...decimal.Decimal) decimal.Decimal {
	if len(factors) == 0 {
		return decimal.Zero
	}
	total := decimal.NewFromInt(1)
	for _, f := range factors {
		total = total.Mul(f)
	}
	return total.Round(MoneyPlaces)
}

func positive(values ...decimal.Decimal) bool {
	for _, v := range values {
		if !v.IsPositive() {
			return false
		}
	}
	return true
}
