// Package valueobject contains the pure financial and calendar rules of the
// rental desk: commission breakdowns, payment settlement and availability.
package valueobject

import (
	"math"

	"github.com/shopspring/decimal"
)

// currencyPlaces is the number of decimal places money is rounded to for display.
const currencyPlaces = 2

var hundred = decimal.NewFromInt(100)

// MoneyFromFloat converts a float amount coming from a request or a row into a
// decimal. NaN, infinities and negative values become zero.
func MoneyFromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// PercentFromFloat converts an optional float percentage into a decimal.
// A nil input stays nil. NaN and infinities become zero; other values,
// including ones outside [0, 100], pass through unchanged.
func PercentFromFloat(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	if math.IsNaN(*f) || math.IsInf(*f, 0) {
		zero := decimal.Zero
		return &zero
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

// RoundMoney rounds an amount to currency precision.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(currencyPlaces)
}

// FormatMoney renders an amount with exactly two decimals.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(currencyPlaces)
}

// nonNegative returns zero for negative amounts.
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// percentOf returns base × pct / 100 at full precision.
func percentOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}
