package capital

import "time"

type LockCapitalInput struct {
	CompanyID        string
	InvestorID       string
	InvestorName     string
	Principal        float64
	Currency         string
	LockPeriodMonths int
	BaseROIRate      float64
	LockDate         time.Time // zero value means "today"
}

type LockDTO struct {
	LockID           string    `json:"lock_id"`
	CompanyID        string    `json:"company_id"`
	InvestorID       string    `json:"investor_id"`
	InvestorName     string    `json:"investor_name"`
	Principal        float64   `json:"principal"`
	PrincipalDisplay string    `json:"principal_display"`
	Currency         string    `json:"currency"`
	LockPeriodMonths int       `json:"lock_period_months"`
	LockDate         time.Time `json:"lock_date"`
	UnlockDate       time.Time `json:"unlock_date"`
	BaseROIRate      float64   `json:"base_roi_rate"`
	BonusRate        float64   `json:"bonus_rate"`
	TotalROIRate     float64   `json:"total_roi_rate"`
	AccruedInterest  float64   `json:"accrued_interest"`
	Status           string    `json:"status"`
	PenaltyRate      float64   `json:"early_withdrawal_penalty_rate,omitempty"`
	PenaltyAmount    float64   `json:"penalty_amount,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
