package capital

import (
	"time"

	"office-nexus-backend/pkg/money"
)

// Accrual policy: simple (non-compounding) interest, monthly rate =
// annual/12, elapsed months = elapsed days / 30. The fixed 30-day month is a
// documented product decision carried over from the bookkeeping rules — do
// not replace it with a calendar-accurate day count, that would change every
// computed interest amount.
const daysPerMonth = 30.0

// ComputeAccruedInterest returns the interest earned on principal between
// lockDate and asOf at the given annual percentage rate. Never negative:
// asOf before lockDate yields 0.
func ComputeAccruedInterest(principal, annualRatePct float64, lockDate, asOf time.Time) float64 {
	if principal <= 0 || !asOf.After(lockDate) {
		return 0
	}
	days := asOf.Sub(lockDate).Hours() / 24
	months := days / daysPerMonth
	monthlyRate := annualRatePct / 100 / 12
	return money.Round2(principal * monthlyRate * months)
}

// bonusRates maps a supported lock period (months) to the ROI bonus granted
// on top of the base rate, in percentage points.
var bonusRates = map[int]float64{
	3:  0.5,
	6:  1.0,
	12: 2.0,
	18: 2.5,
	24: 3.0,
	36: 4.0,
}

// BonusRateFor returns the bonus rate for a lock period, and whether the
// period is one the product supports at all.
func BonusRateFor(months int) (float64, bool) {
	r, ok := bonusRates[months]
	return r, ok
}

// SupportedPeriods lists the lock periods accepted by BonusRateFor, ascending.
func SupportedPeriods() []int {
	return []int{3, 6, 12, 18, 24, 36}
}
