package ledger

import "github.com/shopspring/decimal"

// balanceTolerance absorbs 2-decimal rounding noise when comparing total
// debits against total credits.
var balanceTolerance = decimal.NewFromFloat(0.01)

// BuildTrialBalance folds entries into one row per account code. Row order is
// the order each account first appears in the input, so the same entry
// sequence always produces the same report. Summation runs through decimal to
// keep repeated float64 additions from drifting.
func BuildTrialBalance(entries []Entry) []TrialBalanceRow {
	type acc struct {
		name   string
		debit  decimal.Decimal
		credit decimal.Decimal
	}
	index := make(map[string]int, len(entries))
	var order []string
	sums := make(map[string]*acc, len(entries))

	for _, e := range entries {
		a, ok := sums[e.AccountCode]
		if !ok {
			a = &acc{name: e.AccountName}
			sums[e.AccountCode] = a
			index[e.AccountCode] = len(order)
			order = append(order, e.AccountCode)
		}
		a.debit = a.debit.Add(decimal.NewFromFloat(e.Debit))
		a.credit = a.credit.Add(decimal.NewFromFloat(e.Credit))
	}

	rows := make([]TrialBalanceRow, 0, len(order))
	for _, code := range order {
		a := sums[code]
		rows = append(rows, TrialBalanceRow{
			AccountCode: code,
			AccountName: a.name,
			TotalDebit:  a.debit.Round(2).InexactFloat64(),
			TotalCredit: a.credit.Round(2).InexactFloat64(),
			Balance:     a.debit.Sub(a.credit).Round(2).InexactFloat64(),
		})
	}
	return rows
}

// IsBalanced reports whether total debits equal total credits within the
// rounding tolerance. An empty report is trivially balanced.
func IsBalanced(rows []TrialBalanceRow) bool {
	var debit, credit decimal.Decimal
	for _, r := range rows {
		debit = debit.Add(decimal.NewFromFloat(r.TotalDebit))
		credit = credit.Add(decimal.NewFromFloat(r.TotalCredit))
	}
	return debit.Sub(credit).Abs().LessThan(balanceTolerance)
}

// Totals returns the report-level debit and credit sums.
func Totals(rows []TrialBalanceRow) (totalDebit, totalCredit float64) {
	var debit, credit decimal.Decimal
	for _, r := range rows {
		debit = debit.Add(decimal.NewFromFloat(r.TotalDebit))
		credit = credit.Add(decimal.NewFromFloat(r.TotalCredit))
	}
	return debit.InexactFloat64(), credit.InexactFloat64()
}
