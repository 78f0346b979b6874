package ledger

import (
	"time"

	"gorm.io/gorm"
)

// Entry is one posted ledger line. Normally exactly one of Debit/Credit is
// nonzero, but the aggregator tolerates both being present.
type Entry struct {
	ID          uint64         `gorm:"primaryKey;column:id" json:"-"`
	CompanyID   string         `gorm:"size:32;index:idx_ledger_entries_company" json:"company_id"`
	EntryDate   time.Time      `gorm:"type:date" json:"entry_date"`
	AccountCode string         `gorm:"size:16;index" json:"account_code"`
	AccountName string         `gorm:"size:191" json:"account_name"`
	Debit       float64        `gorm:"type:decimal(18,2)" json:"debit"`
	Credit      float64        `gorm:"type:decimal(18,2)" json:"credit"`
	Reference   string         `gorm:"size:191" json:"reference"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Entry) TableName() string { return "ledger_entries" }

// TrialBalanceRow is derived, never stored. Balance sign convention:
// positive = net debit.
type TrialBalanceRow struct {
	AccountCode string  `json:"account_code"`
	AccountName string  `json:"account_name"`
	TotalDebit  float64 `json:"total_debit"`
	TotalCredit float64 `json:"total_credit"`
	Balance     float64 `json:"balance"`
}
