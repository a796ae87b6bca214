package service

import (
	"context"

	"github.com/alexanderramin/antigravity/internal/catalog"
	"github.com/alexanderramin/antigravity/internal/contract"
	"github.com/alexanderramin/antigravity/internal/domain"
)

type ProfileService interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Save(ctx context.Context, p *domain.UserProfile) error
	Update(ctx context.Context, u contract.ProfileUpdate) (*domain.UserProfile, error)
}

type CheckInService interface {
	Record(ctx context.Context, c *domain.DailyCheckIn) error
	Get(ctx context.Context, date string) (*domain.DailyCheckIn, error)
}

type MedicationService interface {
	Add(ctx context.Context, m *domain.MedicationEntry) error
	AddFromCatalog(ctx context.Context, m *domain.MedicationEntry) error
	List(ctx context.Context) ([]*domain.MedicationEntry, error)
	Update(ctx context.Context, m *domain.MedicationEntry) error
	Delete(ctx context.Context, id string) error
	SearchDrugs(query string) []catalog.Drug
}

type MealService interface {
	Log(ctx context.Context, m *domain.MealLog) error
	Update(ctx context.Context, m *domain.MealLog) error
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, date string) ([]*domain.MealLog, error)
}

// PlanService serves the plan of the day, generating it when no valid
// snapshot exists for the date.
type PlanService interface {
	Today(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

// ReportService summarizes logged history.
type ReportService interface {
	Weekly(ctx context.Context, endDate string) (*contract.WeeklyReport, error)
}
