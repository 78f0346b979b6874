package share

import "context"

type Repository interface {
	// Tx runs fn in a transaction, passing a repo bound to it. Transfers
	// touch two rows and must land atomically.
	Tx(ctx context.Context, fn func(repo Repository) error) error
	Create(ctx context.Context, p *Position) error
	GetByPositionID(ctx context.Context, positionID string) (*Position, error)
	GetByPositionIDForUpdate(ctx context.Context, positionID string) (*Position, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Position, error)
	Save(ctx context.Context, p *Position) error
}
