package withdrawal

import "time"

type RequestInput struct {
	LockID      string
	Reason      string
	RequestDate time.Time // zero value means "now"
}

type ResolveInput struct {
	RequestID string
	Approve   bool
}

type RequestDTO struct {
	RequestID      string     `json:"request_id"`
	LockID         string     `json:"lock_id"`
	CompanyID      string     `json:"company_id"`
	RequestDate    time.Time  `json:"request_date"`
	Reason         string     `json:"reason"`
	PenaltyAmount  float64    `json:"penalty_amount"`
	PenaltyDisplay string     `json:"penalty_display"`
	Status         string     `json:"status"`
	LockStatus     string     `json:"lock_status"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
}
