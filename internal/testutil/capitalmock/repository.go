package capitalmock

import (
	"context"
	"time"

	domain "office-nexus-backend/internal/domain/capital"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying capital.Repository. Fill in the
// fields a test needs; unfilled getters return context.Canceled so a test
// that hits an unexpected path fails loudly.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Lock) error
	GetByLockIDFn          func(ctx context.Context, lockID string) (*domain.Lock, error)
	GetByLockIDForUpdateFn func(ctx context.Context, lockID string) (*domain.Lock, error)
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.Lock, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*domain.Lock, error)
	ListByCompanyIDFn      func(ctx context.Context, companyID string) ([]domain.Lock, error)
	ListMaturedLockedFn    func(ctx context.Context, asOf time.Time) ([]domain.Lock, error)
	SaveFn                 func(ctx context.Context, l *domain.Lock) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Lock) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLockID(ctx context.Context, lockID string) (*domain.Lock, error) {
	if m.GetByLockIDFn != nil {
		return m.GetByLockIDFn(ctx, lockID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLockIDForUpdate(ctx context.Context, lockID string) (*domain.Lock, error) {
	if m.GetByLockIDForUpdateFn != nil {
		return m.GetByLockIDForUpdateFn(ctx, lockID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Lock, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Lock, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCompanyID(ctx context.Context, companyID string) ([]domain.Lock, error) {
	if m.ListByCompanyIDFn != nil {
		return m.ListByCompanyIDFn(ctx, companyID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListMaturedLocked(ctx context.Context, asOf time.Time) ([]domain.Lock, error) {
	if m.ListMaturedLockedFn != nil {
		return m.ListMaturedLockedFn(ctx, asOf)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Lock) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
