package share

import (
	"office-nexus-backend/pkg/apperr"
	"office-nexus-backend/pkg/money"
)

// RecalcMode selects how share percentages are recomputed after a transfer.
type RecalcMode string

const (
	// RecalcModeLegacy reproduces the historical dashboard arithmetic exactly:
	// a brand-new holder receives a proportional slice of the source's
	// percentage, while a transfer to an existing holder recomputes that
	// holder's percentage against the two parties' combined pre-transfer
	// shares only. The two branches use different denominators; kept for
	// compatibility with records produced by the old system.
	RecalcModeLegacy RecalcMode = "legacy"
	// RecalcModeIssuedTotal recomputes both percentages against the company's
	// total issued shares — the corrected arithmetic, opt-in.
	RecalcModeIssuedTotal RecalcMode = "issued_total"
)

func (m RecalcMode) Valid() bool {
	return m == RecalcModeLegacy || m == RecalcModeIssuedTotal
}

// Transfer moves shares between two positions and returns the updated copies.
// to == nil means a new holder: the returned target has only SharesHeld and
// SharePercentage populated, the caller fills in identity fields. Inputs are
// never mutated; validation happens before any arithmetic so a failed call
// leaves nothing half-applied. Share conservation holds for every valid call:
// from'.SharesHeld + to'.SharesHeld == from.SharesHeld + to.SharesHeld.
func Transfer(from Position, to *Position, shares int64, mode RecalcMode, totalIssued int64) (Position, Position, error) {
	var none Position
	if shares <= 0 {
		return none, none, apperr.ValidationField("shares", "must be a positive number of shares")
	}
	if shares > from.SharesHeld {
		return none, none, apperr.ValidationField("shares", "insufficient shares: holder has %d, transfer asks %d", from.SharesHeld, shares)
	}
	if to != nil && to.ID == from.ID && to.PositionID == from.PositionID {
		return none, none, apperr.Validation("cannot transfer shares to the same position")
	}
	if mode == RecalcModeIssuedTotal && totalIssued <= 0 {
		return none, none, apperr.ValidationField("total_issued_shares", "required and positive for issued_total recalculation")
	}

	srcHeld := from.SharesHeld
	newFrom := from
	newFrom.SharesHeld = srcHeld - shares

	var newTo Position
	if to != nil {
		newTo = *to
		newTo.SharesHeld = to.SharesHeld + shares
	} else {
		newTo.SharesHeld = shares
	}

	switch mode {
	case RecalcModeIssuedTotal:
		newFrom.SharePercentage = pctOf(newFrom.SharesHeld, totalIssued)
		newTo.SharePercentage = pctOf(newTo.SharesHeld, totalIssued)
	default: // legacy
		newFrom.SharePercentage = money.Round2(float64(newFrom.SharesHeld) / float64(srcHeld) * from.SharePercentage)
		if to != nil {
			combined := srcHeld + to.SharesHeld
			newTo.SharePercentage = money.Round2(float64(newTo.SharesHeld) / float64(combined) * 100)
		} else {
			newTo.SharePercentage = money.Round2(float64(shares) / float64(srcHeld) * from.SharePercentage)
		}
	}

	return newFrom, newTo, nil
}

func pctOf(shares, total int64) float64 {
	return money.Round2(float64(shares) / float64(total) * 100)
}
