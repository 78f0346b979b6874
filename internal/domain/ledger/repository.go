package ledger

import "context"

type Repository interface {
	// CreateBatch inserts a set of entries atomically (one posting).
	CreateBatch(ctx context.Context, entries []Entry) error
	// ListByCompanyID returns the company's entries in insertion order.
	ListByCompanyID(ctx context.Context, companyID string) ([]Entry, error)
}
