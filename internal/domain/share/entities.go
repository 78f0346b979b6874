package share

import (
	"time"

	"gorm.io/gorm"
)

// Position is one person's shareholding in one company.
// SharePercentage is always derived by a transfer or issuance operation,
// never set directly.
type Position struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	PositionID      string         `gorm:"size:32;uniqueIndex:ux_positions_position_id_active" json:"position_id"`
	CompanyID       string         `gorm:"size:32;index:idx_positions_company" json:"company_id"`
	PersonID        string         `gorm:"size:32;index:idx_positions_person" json:"person_id"`
	PersonName      string         `gorm:"size:191" json:"person_name"`
	SharesHeld      int64          `json:"shares_held"`
	SharePercentage float64        `gorm:"type:decimal(6,2)" json:"share_percentage"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Position) TableName() string { return "shareholder_positions" }
