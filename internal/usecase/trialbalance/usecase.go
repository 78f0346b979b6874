package trialbalance

import (
	"context"
	"time"

	domain "office-nexus-backend/internal/domain/ledger"
	"office-nexus-backend/pkg/apperr"
	"office-nexus-backend/pkg/money"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type EntryInput struct {
	EntryDate   time.Time
	AccountCode string
	AccountName string
	Debit       float64
	Credit      float64
	Reference   string
}

type ReportDTO struct {
	CompanyID   string
	Rows        []domain.TrialBalanceRow
	TotalDebit  float64
	TotalCredit float64
	Balanced    bool
	GeneratedAt time.Time
}

// PostEntries stores a batch of ledger lines as one atomic posting.
func (u *Usecase) PostEntries(ctx context.Context, companyID string, inputs []EntryInput) ([]domain.Entry, error) {
	if len(inputs) == 0 {
		return nil, apperr.ValidationField("entries", "at least one entry is required")
	}
	entries := make([]domain.Entry, 0, len(inputs))
	for i, in := range inputs {
		if in.AccountCode == "" {
			return nil, apperr.ValidationField("entries", "entry %d: account_code is required", i)
		}
		if in.Debit < 0 || in.Credit < 0 {
			return nil, apperr.ValidationField("entries", "entry %d: debit and credit must not be negative", i)
		}
		if in.Debit == 0 && in.Credit == 0 {
			return nil, apperr.ValidationField("entries", "entry %d: debit or credit must be set", i)
		}
		date := in.EntryDate
		if date.IsZero() {
			date = time.Now().UTC()
		}
		entries = append(entries, domain.Entry{
			CompanyID:   companyID,
			EntryDate:   date,
			AccountCode: in.AccountCode,
			AccountName: in.AccountName,
			Debit:       money.Round2(in.Debit),
			Credit:      money.Round2(in.Credit),
			Reference:   in.Reference,
		})
	}
	if err := u.repo.CreateBatch(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Build aggregates the company's ledger into a trial balance report.
func (u *Usecase) Build(ctx context.Context, companyID string) (*ReportDTO, error) {
	entries, err := u.repo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	rows := domain.BuildTrialBalance(entries)
	debit, credit := domain.Totals(rows)
	return &ReportDTO{
		CompanyID:   companyID,
		Rows:        rows,
		TotalDebit:  debit,
		TotalCredit: credit,
		Balanced:    domain.IsBalanced(rows),
		GeneratedAt: time.Now().UTC(),
	}, nil
}
