// Package money holds the small amount-arithmetic helpers shared by the
// capital, withdrawal, and ledger code. Stored amounts are float64 columns
// (decimal(18,2) in MySQL); every computed amount goes through decimal and is
// rounded half-up to 2 places before it is persisted or summed.
package money

import (
	"fmt"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Round2 rounds v half-up to 2 decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Percent returns amount × pct/100, rounded to 2 places.
// pct is a percentage (5 means 5%), not a fraction.
func Percent(amount, pct float64) float64 {
	a := decimal.NewFromFloat(amount)
	p := decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100))
	return a.Mul(p).Round(2).InexactFloat64()
}

// Format renders an amount with its ISO currency symbol and grouping,
// e.g. Format(25000, "RWF") → "FRw25,000". Unknown codes fall back to a
// plain "<code> <amount>" rendering rather than failing.
func Format(amount float64, code string) string {
	cur := gomoney.GetCurrency(code)
	if cur == nil {
		return fmt.Sprintf("%s %.2f", code, amount)
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return gomoney.New(minor, code).Display()
}
