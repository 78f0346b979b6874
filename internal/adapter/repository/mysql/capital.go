package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	capitalDomain "office-nexus-backend/internal/domain/capital"
)

type CapitalRepository struct{ db *gorm.DB }

func NewCapitalRepository(db *gorm.DB) *CapitalRepository { return &CapitalRepository{db: db} }

func (r *CapitalRepository) Create(ctx context.Context, l *capitalDomain.Lock) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *CapitalRepository) Save(ctx context.Context, l *capitalDomain.Lock) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *CapitalRepository) GetByLockID(ctx context.Context, lockID string) (*capitalDomain.Lock, error) {
	var out capitalDomain.Lock
	res := r.db.WithContext(ctx).Where("lock_id = ?", lockID).First(&out)
	return &out, res.Error
}

func (r *CapitalRepository) GetByLockIDForUpdate(ctx context.Context, lockID string) (*capitalDomain.Lock, error) {
	var out capitalDomain.Lock
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("lock_id = ?", lockID).
		First(&out)
	return &out, res.Error
}

func (r *CapitalRepository) GetByID(ctx context.Context, id uint64) (*capitalDomain.Lock, error) {
	var out capitalDomain.Lock
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *CapitalRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*capitalDomain.Lock, error) {
	var out capitalDomain.Lock
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *CapitalRepository) ListByCompanyID(ctx context.Context, companyID string) ([]capitalDomain.Lock, error) {
	var out []capitalDomain.Lock
	res := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *CapitalRepository) ListMaturedLocked(ctx context.Context, asOf time.Time) ([]capitalDomain.Lock, error) {
	var out []capitalDomain.Lock
	res := r.db.WithContext(ctx).
		Where("status = ? AND unlock_date <= ?", capitalDomain.StatusLocked, asOf).
		Order("unlock_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}
