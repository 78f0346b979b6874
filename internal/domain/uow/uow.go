package uow

import (
	"context"

	"office-nexus-backend/internal/domain/capital"
	"office-nexus-backend/internal/domain/withdrawal"
)

// Repos bundles the repositories that participate in a withdrawal
// transaction, all bound to the same database tx.
type Repos struct {
	Locks       capital.Repository
	Withdrawals withdrawal.Repository
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLockTx locks the capital row (SELECT ... FOR UPDATE) before
	// handing it to fn, so state guards can't race.
	WithinLockTx(ctx context.Context, lockID string, fn func(r Repos, l *capital.Lock) error) error
}
