package mysql

import (
	"context"

	"gorm.io/gorm"

	ledgerDomain "office-nexus-backend/internal/domain/ledger"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

// CreateBatch inserts one posting atomically; a failed line rolls back the
// whole batch.
func (r *LedgerRepository) CreateBatch(ctx context.Context, entries []ledgerDomain.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entries).Error
	})
}

func (r *LedgerRepository) ListByCompanyID(ctx context.Context, companyID string) ([]ledgerDomain.Entry, error) {
	var out []ledgerDomain.Entry
	res := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
