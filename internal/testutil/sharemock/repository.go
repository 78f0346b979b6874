package sharemock

import (
	"context"

	domain "office-nexus-backend/internal/domain/share"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying share.Repository. Tx defaults to
// running fn against the mock itself, which is what most tests want.
type Repo struct {
	TxFn                       func(ctx context.Context, fn func(repo domain.Repository) error) error
	CreateFn                   func(ctx context.Context, p *domain.Position) error
	GetByPositionIDFn          func(ctx context.Context, positionID string) (*domain.Position, error)
	GetByPositionIDForUpdateFn func(ctx context.Context, positionID string) (*domain.Position, error)
	ListByCompanyIDFn          func(ctx context.Context, companyID string) ([]domain.Position, error)
	SaveFn                     func(ctx context.Context, p *domain.Position) error
}

func (m *Repo) Tx(ctx context.Context, fn func(repo domain.Repository) error) error {
	if m.TxFn != nil {
		return m.TxFn(ctx, fn)
	}
	return fn(m)
}

func (m *Repo) Create(ctx context.Context, p *domain.Position) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPositionID(ctx context.Context, positionID string) (*domain.Position, error) {
	if m.GetByPositionIDFn != nil {
		return m.GetByPositionIDFn(ctx, positionID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByPositionIDForUpdate(ctx context.Context, positionID string) (*domain.Position, error) {
	if m.GetByPositionIDForUpdateFn != nil {
		return m.GetByPositionIDForUpdateFn(ctx, positionID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCompanyID(ctx context.Context, companyID string) ([]domain.Position, error) {
	if m.ListByCompanyIDFn != nil {
		return m.ListByCompanyIDFn(ctx, companyID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, p *domain.Position) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
