package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/antigravity/internal/domain"
)

// UserProfileRepo stores the single local profile.
type UserProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}

// CheckInRepo keeps at most one check-in per date.
type CheckInRepo interface {
	Upsert(ctx context.Context, c *domain.DailyCheckIn) error
	GetByDate(ctx context.Context, date string) (*domain.DailyCheckIn, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.DailyCheckIn, error)
}

type MedicationRepo interface {
	Create(ctx context.Context, m *domain.MedicationEntry) error
	GetByID(ctx context.Context, id string) (*domain.MedicationEntry, error)
	List(ctx context.Context) ([]*domain.MedicationEntry, error)
	Update(ctx context.Context, m *domain.MedicationEntry) error
	Delete(ctx context.Context, id string) error
}

// MealLogRepo lists meals in logging order.
type MealLogRepo interface {
	Create(ctx context.Context, m *domain.MealLog) error
	GetByID(ctx context.Context, id string) (*domain.MealLog, error)
	ListByDate(ctx context.Context, date string) ([]*domain.MealLog, error)
	ListBetween(ctx context.Context, from, to string) ([]*domain.MealLog, error)
	Update(ctx context.Context, m *domain.MealLog) error
	Delete(ctx context.Context, id string) error
}

// PlanRepo stores one whole plan snapshot per date.
type PlanRepo interface {
	Save(ctx context.Context, p *domain.PlanOfDay) error
	GetByDate(ctx context.Context, date string) (*domain.PlanOfDay, error)
	Invalidate(ctx context.Context, date string, at time.Time) error
}
