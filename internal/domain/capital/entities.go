package capital

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusLocked                   Status = "locked"
	StatusUnlocked                 Status = "unlocked"
	StatusEarlyWithdrawalRequested Status = "early_withdrawal_requested"
	StatusPenaltyApplied           Status = "penalty_applied"
)

type Currency string

const (
	CurrencyRWF Currency = "RWF"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyRWF, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// Lock is an investor's principal committed for a fixed term in exchange for
// an ROI rate. Financial record: rows are soft-deleted only, never removed.
type Lock struct {
	ID               uint64         `gorm:"primaryKey;column:id" json:"-"`
	LockID           string         `gorm:"size:32;uniqueIndex:ux_capital_locks_lock_id_active" json:"lock_id"`
	CompanyID        string         `gorm:"size:32;index:idx_capital_locks_company" json:"company_id"`
	InvestorID       string         `gorm:"size:32;index:idx_capital_locks_investor" json:"investor_id"`
	InvestorName     string         `gorm:"size:191" json:"investor_name"`
	Principal        float64        `gorm:"type:decimal(18,2)" json:"principal"`
	Currency         Currency       `gorm:"type:enum('RWF','USD','EUR');default:'RWF'" json:"currency"`
	LockPeriodMonths int            `json:"lock_period_months"`
	LockDate         time.Time      `gorm:"type:date" json:"lock_date"`
	UnlockDate       time.Time      `gorm:"type:date" json:"unlock_date"`
	BaseROIRate      float64        `gorm:"type:decimal(6,2)" json:"base_roi_rate"`
	BonusRate        float64        `gorm:"type:decimal(6,2)" json:"bonus_rate"`
	TotalROIRate     float64        `gorm:"type:decimal(6,2)" json:"total_roi_rate"`
	AccruedInterest  float64        `gorm:"type:decimal(18,2)" json:"accrued_interest"`
	Status           Status         `gorm:"type:enum('locked','unlocked','early_withdrawal_requested','penalty_applied');default:'locked'" json:"status"`
	PenaltyRate      float64        `gorm:"column:early_withdrawal_penalty_rate;type:decimal(6,2)" json:"early_withdrawal_penalty_rate"`
	PenaltyAmount    float64        `gorm:"type:decimal(18,2)" json:"penalty_amount"`
	StatusUpdatedAt  time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Lock) TableName() string { return "capital_locks" }

// Accruing reports whether interest is still running on this lock.
func (l *Lock) Accruing() bool {
	return l.Status == StatusLocked || l.Status == StatusEarlyWithdrawalRequested
}

// CheckMaturity transitions locked → unlocked once now reaches the unlock
// date, freezing accrued interest at its maturity value. Calling it on a lock
// that is not in the locked state, or before maturity, is a no-op. Returns
// true when a transition happened.
func (l *Lock) CheckMaturity(now time.Time) bool {
	if l.Status != StatusLocked || now.Before(l.UnlockDate) {
		return false
	}
	l.AccruedInterest = ComputeAccruedInterest(l.Principal, l.TotalROIRate, l.LockDate, l.UnlockDate)
	l.Status = StatusUnlocked
	l.StatusUpdatedAt = now.UTC()
	return true
}

// AccruedAsOf reports the interest earned by asOf. While the lock is accruing
// this is recomputed live (capped at the unlock date); once the status leaves
// the accruing pair the stored frozen value is authoritative.
func (l *Lock) AccruedAsOf(asOf time.Time) float64 {
	if !l.Accruing() {
		return l.AccruedInterest
	}
	if asOf.After(l.UnlockDate) {
		asOf = l.UnlockDate
	}
	return ComputeAccruedInterest(l.Principal, l.TotalROIRate, l.LockDate, asOf)
}
