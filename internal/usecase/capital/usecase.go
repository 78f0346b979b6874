package capital

import (
	"context"
	"log"
	"time"

	domain "office-nexus-backend/internal/domain/capital"
	"office-nexus-backend/pkg/apperr"
	"office-nexus-backend/pkg/id"
	"office-nexus-backend/pkg/money"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Lock creates a capital lock: bonus rate comes from the period table,
// unlock date is lock date shifted by the period.
func (u *Usecase) Lock(ctx context.Context, in LockCapitalInput) (*LockDTO, error) {
	if in.Principal <= 0 {
		return nil, apperr.ValidationField("principal", "must be greater than zero")
	}
	cur := domain.Currency(in.Currency)
	if !cur.Valid() {
		return nil, apperr.ValidationField("currency", "must be one of RWF, USD, EUR")
	}
	bonus, ok := domain.BonusRateFor(in.LockPeriodMonths)
	if !ok {
		return nil, apperr.ValidationField("lock_period_months", "unsupported lock period %d, supported: %v", in.LockPeriodMonths, domain.SupportedPeriods())
	}
	if in.BaseROIRate < 0 {
		return nil, apperr.ValidationField("base_roi_rate", "must not be negative")
	}

	lockDate := in.LockDate
	if lockDate.IsZero() {
		lockDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	l := &domain.Lock{
		LockID:           id.NewID32(),
		CompanyID:        in.CompanyID,
		InvestorID:       in.InvestorID,
		InvestorName:     in.InvestorName,
		Principal:        money.Round2(in.Principal),
		Currency:         cur,
		LockPeriodMonths: in.LockPeriodMonths,
		LockDate:         lockDate,
		UnlockDate:       lockDate.AddDate(0, in.LockPeriodMonths, 0),
		BaseROIRate:      in.BaseROIRate,
		BonusRate:        bonus,
		TotalROIRate:     in.BaseROIRate + bonus,
		AccruedInterest:  0,
		Status:           domain.StatusLocked,
		StatusUpdatedAt:  time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return u.toDTO(l, time.Now().UTC()), nil
}

func (u *Usecase) Get(ctx context.Context, lockID string) (*LockDTO, error) {
	l, err := u.repo.GetByLockID(ctx, lockID)
	if err != nil {
		return nil, err
	}
	return u.toDTO(l, time.Now().UTC()), nil
}

func (u *Usecase) ListByCompany(ctx context.Context, companyID string) ([]LockDTO, error) {
	locks, err := u.repo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	out := make([]LockDTO, 0, len(locks))
	for i := range locks {
		out = append(out, *u.toDTO(&locks[i], now))
	}
	return out, nil
}

// CheckMaturity applies the locked → unlocked transition if the lock has
// matured. Safe to call repeatedly; a lock already unlocked just comes back
// unchanged.
func (u *Usecase) CheckMaturity(ctx context.Context, lockID string, now time.Time) (*LockDTO, error) {
	l, err := u.repo.GetByLockID(ctx, lockID)
	if err != nil {
		return nil, err
	}
	if l.CheckMaturity(now) {
		if err := u.repo.Save(ctx, l); err != nil {
			return nil, err
		}
	}
	return u.toDTO(l, now), nil
}

// MaturitySweep unlocks every matured lock in one pass and returns how many
// transitioned. Per-row failures are logged and skipped so one bad row
// doesn't stall the sweep.
func (u *Usecase) MaturitySweep(ctx context.Context, now time.Time) (int, error) {
	matured, err := u.repo.ListMaturedLocked(ctx, now)
	if err != nil {
		return 0, err
	}
	n := 0
	for i := range matured {
		l := &matured[i]
		if !l.CheckMaturity(now) {
			continue
		}
		if err := u.repo.Save(ctx, l); err != nil {
			log.Printf("maturity sweep: save %s: %v", l.LockID, err)
			continue
		}
		n++
	}
	return n, nil
}

func (u *Usecase) toDTO(l *domain.Lock, now time.Time) *LockDTO {
	return &LockDTO{
		LockID:           l.LockID,
		CompanyID:        l.CompanyID,
		InvestorID:       l.InvestorID,
		InvestorName:     l.InvestorName,
		Principal:        l.Principal,
		PrincipalDisplay: money.Format(l.Principal, string(l.Currency)),
		Currency:         string(l.Currency),
		LockPeriodMonths: l.LockPeriodMonths,
		LockDate:         l.LockDate,
		UnlockDate:       l.UnlockDate,
		BaseROIRate:      l.BaseROIRate,
		BonusRate:        l.BonusRate,
		TotalROIRate:     l.TotalROIRate,
		AccruedInterest:  l.AccruedAsOf(now),
		Status:           string(l.Status),
		PenaltyRate:      l.PenaltyRate,
		PenaltyAmount:    l.PenaltyAmount,
		CreatedAt:        l.CreatedAt,
	}
}
