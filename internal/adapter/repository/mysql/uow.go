package mysql

import (
	"context"

	"gorm.io/gorm"

	"office-nexus-backend/internal/domain/capital"
	"office-nexus-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Locks:       &CapitalRepository{db: tx},
			Withdrawals: &WithdrawalRepository{db: tx},
		})
	})
}

func (u *GormUoW) WithinLockTx(ctx context.Context, lockID string, fn func(r uow.Repos, l *capital.Lock) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Locks:       &CapitalRepository{db: tx},
			Withdrawals: &WithdrawalRepository{db: tx},
		}
		// hold the capital row for the whole transaction
		l, err := r.Locks.GetByLockIDForUpdate(ctx, lockID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
