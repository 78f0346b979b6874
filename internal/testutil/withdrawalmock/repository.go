package withdrawalmock

import (
	"context"

	domain "office-nexus-backend/internal/domain/withdrawal"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying withdrawal.Repository.
type Repo struct {
	CreateFn                      func(ctx context.Context, r *domain.Request) error
	GetByRequestIDFn              func(ctx context.Context, requestID string) (*domain.Request, error)
	GetByRequestIDForUpdateFn     func(ctx context.Context, requestID string) (*domain.Request, error)
	GetPendingByLockedCapitalIDFn func(ctx context.Context, lockedCapitalID uint64) (*domain.Request, error)
	ListByCompanyIDFn             func(ctx context.Context, companyID string) ([]domain.Request, error)
	SaveFn                        func(ctx context.Context, r *domain.Request) error
}

func (m *Repo) Create(ctx context.Context, r *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetPendingByLockedCapitalID(ctx context.Context, lockedCapitalID uint64) (*domain.Request, error) {
	if m.GetPendingByLockedCapitalIDFn != nil {
		return m.GetPendingByLockedCapitalIDFn(ctx, lockedCapitalID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCompanyID(ctx context.Context, companyID string) ([]domain.Request, error) {
	if m.ListByCompanyIDFn != nil {
		return m.ListByCompanyIDFn(ctx, companyID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, r *domain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
