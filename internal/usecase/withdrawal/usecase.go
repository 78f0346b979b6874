package withdrawal

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"office-nexus-backend/internal/domain/capital"
	"office-nexus-backend/internal/domain/uow"
	domain "office-nexus-backend/internal/domain/withdrawal"
	"office-nexus-backend/pkg/apperr"
	"office-nexus-backend/pkg/id"
	"office-nexus-backend/pkg/money"
)

// DefaultPenaltyRatePct is the policy penalty for exiting a lock early,
// in percent of principal. Overridable through config.
const DefaultPenaltyRatePct = 5.0

type Usecase struct {
	uow            uow.UnitOfWork
	penaltyRatePct float64
}

func NewUsecase(tx uow.UnitOfWork, penaltyRatePct float64) *Usecase {
	if penaltyRatePct <= 0 {
		penaltyRatePct = DefaultPenaltyRatePct
	}
	return &Usecase{uow: tx, penaltyRatePct: penaltyRatePct}
}

// Request opens an early-withdrawal request against a locked capital record.
// Runs in one transaction with the lock row held, so the one-outstanding-
// request rule can't race.
func (u *Usecase) Request(ctx context.Context, in RequestInput) (*RequestDTO, error) {
	now := in.RequestDate
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var dto *RequestDTO
	err := u.uow.WithinLockTx(ctx, in.LockID, func(r uow.Repos, l *capital.Lock) error {
		if _, err := r.Withdrawals.GetPendingByLockedCapitalID(ctx, l.ID); err == nil {
			return apperr.Conflict("capital lock %s already has a pending withdrawal request", l.LockID)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		req, err := domain.NewRequest(l, id.NewID32(), in.Reason, u.penaltyRatePct, now)
		if err != nil {
			return err
		}
		if err := r.Withdrawals.Create(ctx, req); err != nil {
			return err
		}
		if err := r.Locks.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(req, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Resolve applies the single allowed approval/rejection to a pending request
// and moves the lock accordingly. Both rows are locked for the duration of
// the transaction; a second resolution fails with an invalid-state error.
func (u *Usecase) Resolve(ctx context.Context, in ResolveInput) (*RequestDTO, error) {
	now := time.Now().UTC()

	var dto *RequestDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Withdrawals.GetByRequestIDForUpdate(ctx, in.RequestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("withdrawal request %s not found", in.RequestID)
			}
			return err
		}
		l, err := r.Locks.GetByIDForUpdate(ctx, req.LockedCapitalID)
		if err != nil {
			return err
		}
		if err := req.Resolve(l, in.Approve, now); err != nil {
			return err
		}
		if err := r.Withdrawals.Save(ctx, req); err != nil {
			return err
		}
		if err := r.Locks.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(req, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, requestID string) (*RequestDTO, error) {
	var dto *RequestDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Withdrawals.GetByRequestID(ctx, requestID)
		if err != nil {
			return err
		}
		l, err := r.Locks.GetByID(ctx, req.LockedCapitalID)
		if err != nil {
			return err
		}
		dto = toDTO(req, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toDTO(req *domain.Request, l *capital.Lock) *RequestDTO {
	return &RequestDTO{
		RequestID:      req.RequestID,
		LockID:         l.LockID,
		CompanyID:      req.CompanyID,
		RequestDate:    req.RequestDate,
		Reason:         req.Reason,
		PenaltyAmount:  req.PenaltyAmount,
		PenaltyDisplay: money.Format(req.PenaltyAmount, string(l.Currency)),
		Status:         string(req.Status),
		LockStatus:     string(l.Status),
		ResolvedAt:     req.ResolvedAt,
	}
}
