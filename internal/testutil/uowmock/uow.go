package uowmock

import (
	"context"
	"errors"

	"office-nexus-backend/internal/domain/capital"
	"office-nexus-backend/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock satisfying uow.UnitOfWork. Fill in the
// function fields a test needs; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLockTxFn func(ctx context.Context, lockID string, fn func(r uow.Repos, l *capital.Lock) error) error
}

// Passthrough builds a UoW whose transactions simply run against the given
// repos, with lock lookup going through Locks.GetByLockIDForUpdate. Enough
// for usecase tests that don't care about tx mechanics.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinLockTxFn: func(ctx context.Context, lockID string, fn func(r uow.Repos, l *capital.Lock) error) error {
			l, err := r.Locks.GetByLockIDForUpdate(ctx, lockID)
			if err != nil {
				return err
			}
			return fn(r, l)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLockTx(ctx context.Context, lockID string, fn func(r uow.Repos, l *capital.Lock) error) error {
	if m.WithinLockTxFn != nil {
		return m.WithinLockTxFn(ctx, lockID, fn)
	}
	return errUnimplemented
}
