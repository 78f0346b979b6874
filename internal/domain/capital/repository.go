package capital

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Lock) error
	GetByLockID(ctx context.Context, lockID string) (*Lock, error)
	// GetByLockIDForUpdate loads the row with a SELECT ... FOR UPDATE lock;
	// only meaningful inside a transaction.
	GetByLockIDForUpdate(ctx context.Context, lockID string) (*Lock, error)
	GetByID(ctx context.Context, id uint64) (*Lock, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Lock, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Lock, error)
	// ListMaturedLocked returns locks still in the locked state whose unlock
	// date is at or before asOf — the maturity sweeper's work list.
	ListMaturedLocked(ctx context.Context, asOf time.Time) ([]Lock, error)
	Save(ctx context.Context, l *Lock) error
}
