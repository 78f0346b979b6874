package ledgermock

import (
	"context"

	domain "office-nexus-backend/internal/domain/ledger"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying ledger.Repository.
type Repo struct {
	CreateBatchFn     func(ctx context.Context, entries []domain.Entry) error
	ListByCompanyIDFn func(ctx context.Context, companyID string) ([]domain.Entry, error)
}

func (m *Repo) CreateBatch(ctx context.Context, entries []domain.Entry) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, entries)
	}
	return nil
}

func (m *Repo) ListByCompanyID(ctx context.Context, companyID string) ([]domain.Entry, error) {
	if m.ListByCompanyIDFn != nil {
		return m.ListByCompanyIDFn(ctx, companyID)
	}
	return nil, context.Canceled
}
