package withdrawal

import (
	"time"

	"gorm.io/gorm"

	"office-nexus-backend/internal/domain/capital"
	"office-nexus-backend/pkg/apperr"
	"office-nexus-backend/pkg/money"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is an investor's ask to exit a capital lock before maturity.
// Exactly one resolution per request; resolved rows are never mutated again.
type Request struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	RequestID       string         `gorm:"size:32;uniqueIndex:ux_withdrawals_request_id_active" json:"request_id"`
	LockedCapitalID uint64         `gorm:"column:locked_capital_id;not null;index" json:"-"`
	LockID          string         `gorm:"-" json:"lock_id"`
	CompanyID       string         `gorm:"size:32;index" json:"company_id"`
	RequestDate     time.Time      `gorm:"type:date" json:"request_date"`
	Reason          string         `gorm:"type:text" json:"reason"`
	PenaltyAmount   float64        `gorm:"type:decimal(18,2)" json:"penalty_amount"`
	Status          Status         `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	ResolvedAt      *time.Time     `json:"resolved_at,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Request) TableName() string { return "early_withdrawal_requests" }

// NewRequest builds a pending request against a locked capital record and
// moves the lock into early_withdrawal_requested, stamping the penalty it
// would incur (principal × penaltyRatePct). The lock must be locked.
func NewRequest(lock *capital.Lock, requestID, reason string, penaltyRatePct float64, now time.Time) (*Request, error) {
	if lock.Status == capital.StatusEarlyWithdrawalRequested {
		return nil, apperr.Conflict("capital lock %s already has a pending withdrawal request", lock.LockID)
	}
	if lock.Status != capital.StatusLocked {
		return nil, apperr.InvalidState("capital lock %s is %s, early withdrawal requires locked", lock.LockID, lock.Status)
	}

	penalty := money.Percent(lock.Principal, penaltyRatePct)
	lock.Status = capital.StatusEarlyWithdrawalRequested
	lock.PenaltyRate = penaltyRatePct
	lock.PenaltyAmount = penalty
	lock.StatusUpdatedAt = now.UTC()

	return &Request{
		RequestID:       requestID,
		LockedCapitalID: lock.ID,
		LockID:          lock.LockID,
		CompanyID:       lock.CompanyID,
		RequestDate:     now.UTC(),
		Reason:          reason,
		PenaltyAmount:   penalty,
		Status:          StatusPending,
	}, nil
}

// Resolve applies the single permitted resolution to a pending request.
// Approve releases the lock (unlocked, accrual frozen as of now, penalty
// kept). Reject puts the lock back to locked and clears the penalty so
// accrual resumes untouched. Resolving twice fails.
func (r *Request) Resolve(lock *capital.Lock, approve bool, now time.Time) error {
	if r.Status != StatusPending {
		return apperr.InvalidState("withdrawal request %s is already %s", r.RequestID, r.Status)
	}
	if lock.Status != capital.StatusEarlyWithdrawalRequested {
		return apperr.InvalidState("capital lock %s is %s, expected early_withdrawal_requested", lock.LockID, lock.Status)
	}

	now = now.UTC()
	if approve {
		r.Status = StatusApproved
		lock.AccruedInterest = lock.AccruedAsOf(now)
		lock.Status = capital.StatusUnlocked
	} else {
		r.Status = StatusRejected
		lock.Status = capital.StatusLocked
		lock.PenaltyRate = 0
		lock.PenaltyAmount = 0
	}
	r.ResolvedAt = &now
	lock.StatusUpdatedAt = now
	return nil
}
