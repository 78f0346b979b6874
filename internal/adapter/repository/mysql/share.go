package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	shareDomain "office-nexus-backend/internal/domain/share"
)

type ShareRepository struct{ db *gorm.DB }

func NewShareRepository(db *gorm.DB) *ShareRepository { return &ShareRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx.
func (r *ShareRepository) Tx(ctx context.Context, fn func(repo shareDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ShareRepository{db: tx})
	})
}

func (r *ShareRepository) Create(ctx context.Context, p *shareDomain.Position) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ShareRepository) Save(ctx context.Context, p *shareDomain.Position) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ShareRepository) GetByPositionID(ctx context.Context, positionID string) (*shareDomain.Position, error) {
	var out shareDomain.Position
	res := r.db.WithContext(ctx).Where("position_id = ?", positionID).First(&out)
	return &out, res.Error
}

func (r *ShareRepository) GetByPositionIDForUpdate(ctx context.Context, positionID string) (*shareDomain.Position, error) {
	var out shareDomain.Position
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("position_id = ?", positionID).
		First(&out)
	return &out, res.Error
}

func (r *ShareRepository) ListByCompanyID(ctx context.Context, companyID string) ([]shareDomain.Position, error) {
	var out []shareDomain.Position
	res := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
