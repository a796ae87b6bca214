package contract

import (
	"time"

	"github.com/alexanderramin/antigravity/internal/domain"
)

type PlanRequest struct {
	Date       string     // YYYY-MM-DD; empty means today
	Now        *time.Time // overrides the clock used to resolve today
	Regenerate bool       // ignore a still-valid stored snapshot
}

func NewPlanRequest(date string) PlanRequest {
	return PlanRequest{Date: date}
}

// ResolveDate returns the requested day key, falling back to today in local time.
func (r PlanRequest) ResolveDate() string {
	if r.Date != "" {
		return r.Date
	}
	now := time.Now()
	if r.Now != nil {
		now = *r.Now
	}
	return now.Format(domain.DateLayout)
}

type PlanResponse struct {
	Plan         domain.PlanOfDay  `json:"plan"`
	CategoryRule string            `json:"category_rule"`
	Reused       bool              `json:"reused"` // served from a valid stored snapshot
	Facts        domain.CoachFacts `json:"coach_facts"`
}

type PlanErrorCode string

const (
	ErrProfileRequired PlanErrorCode = "PROFILE_REQUIRED"
	ErrCheckInRequired PlanErrorCode = "CHECKIN_REQUIRED"
	ErrInvalidInput    PlanErrorCode = "INVALID_INPUT"
	ErrInternalError   PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *PlanError) Unwrap() error { return e.Err }
