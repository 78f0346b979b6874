package withdrawal

import "context"

type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*Request, error)
	// GetPendingByLockedCapitalID finds the outstanding request for a lock,
	// by numeric FK. gorm.ErrRecordNotFound when there is none.
	GetPendingByLockedCapitalID(ctx context.Context, lockedCapitalID uint64) (*Request, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Request, error)
	Save(ctx context.Context, r *Request) error
}
