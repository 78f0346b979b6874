package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	withdrawalDomain "office-nexus-backend/internal/domain/withdrawal"
)

type WithdrawalRepository struct{ db *gorm.DB }

func NewWithdrawalRepository(db *gorm.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

func (r *WithdrawalRepository) Create(ctx context.Context, w *withdrawalDomain.Request) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WithdrawalRepository) Save(ctx context.Context, w *withdrawalDomain.Request) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *WithdrawalRepository) GetByRequestID(ctx context.Context, requestID string) (*withdrawalDomain.Request, error) {
	var out withdrawalDomain.Request
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *WithdrawalRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*withdrawalDomain.Request, error) {
	var out withdrawalDomain.Request
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, res.Error
}

func (r *WithdrawalRepository) GetPendingByLockedCapitalID(ctx context.Context, lockedCapitalID uint64) (*withdrawalDomain.Request, error) {
	var out withdrawalDomain.Request
	res := r.db.WithContext(ctx).
		Where("locked_capital_id = ? AND status = ?", lockedCapitalID, withdrawalDomain.StatusPending).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *WithdrawalRepository) ListByCompanyID(ctx context.Context, companyID string) ([]withdrawalDomain.Request, error) {
	var out []withdrawalDomain.Request
	res := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
