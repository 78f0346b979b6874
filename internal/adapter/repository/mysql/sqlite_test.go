package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no mysql ENUM columns) ---

type lockSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	LockID           string         `gorm:"size:32;column:lock_id"`
	CompanyID        string         `gorm:"size:32;column:company_id"`
	InvestorID       string         `gorm:"size:32;column:investor_id"`
	InvestorName     string         `gorm:"column:investor_name"`
	Principal        float64        `gorm:"column:principal"`
	Currency         string         `gorm:"type:text;column:currency"`
	LockPeriodMonths int            `gorm:"column:lock_period_months"`
	LockDate         time.Time      `gorm:"column:lock_date"`
	UnlockDate       time.Time      `gorm:"column:unlock_date"`
	BaseROIRate      float64        `gorm:"column:base_roi_rate"`
	BonusRate        float64        `gorm:"column:bonus_rate"`
	TotalROIRate     float64        `gorm:"column:total_roi_rate"`
	AccruedInterest  float64        `gorm:"column:accrued_interest"`
	Status           string         `gorm:"type:text;column:status"`
	PenaltyRate      float64        `gorm:"column:early_withdrawal_penalty_rate"`
	PenaltyAmount    float64        `gorm:"column:penalty_amount"`
	StatusUpdatedAt  time.Time      `gorm:"column:status_updated_at"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (lockSQLite) TableName() string { return "capital_locks" }

type withdrawalSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	RequestID       string         `gorm:"size:32;column:request_id"`
	LockedCapitalID uint64         `gorm:"column:locked_capital_id"`
	CompanyID       string         `gorm:"size:32;column:company_id"`
	RequestDate     time.Time      `gorm:"column:request_date"`
	Reason          string         `gorm:"column:reason"`
	PenaltyAmount   float64        `gorm:"column:penalty_amount"`
	Status          string         `gorm:"type:text;column:status"`
	ResolvedAt      *time.Time     `gorm:"column:resolved_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (withdrawalSQLite) TableName() string { return "early_withdrawal_requests" }

type positionSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	PositionID      string         `gorm:"size:32;column:position_id"`
	CompanyID       string         `gorm:"size:32;column:company_id"`
	PersonID        string         `gorm:"size:32;column:person_id"`
	PersonName      string         `gorm:"column:person_name"`
	SharesHeld      int64          `gorm:"column:shares_held"`
	SharePercentage float64        `gorm:"column:share_percentage"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (positionSQLite) TableName() string { return "shareholder_positions" }

type ledgerEntrySQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	CompanyID   string         `gorm:"size:32;column:company_id"`
	EntryDate   time.Time      `gorm:"column:entry_date"`
	AccountCode string         `gorm:"column:account_code"`
	AccountName string         `gorm:"column:account_name"`
	Debit       float64        `gorm:"column:debit"`
	Credit      float64        `gorm:"column:credit"`
	Reference   string         `gorm:"column:reference"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (ledgerEntrySQLite) TableName() string { return "ledger_entries" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schema copies, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&lockSQLite{}, &withdrawalSQLite{}, &positionSQLite{}, &ledgerEntrySQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
