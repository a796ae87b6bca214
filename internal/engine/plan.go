// Package engine turns a profile, today's check-in, medications and meal
// logs into a plan of the day. Everything here is pure: no I/O, no shared
// mutable state, no error returns.
package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/antigravity/internal/catalog"
	"github.com/alexanderramin/antigravity/internal/domain"
)

type PlanInput struct {
	Profile     domain.UserProfile
	CheckIn     domain.DailyCheckIn
	Medications []domain.MedicationEntry
	TodayMeals  []domain.MealLog
}

// Engine composes the individual advisors. It is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	now     func() time.Time
	newID   func() string
}

type Option func(*Engine)

// WithClock overrides the generation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDFunc overrides plan id generation.
func WithIDFunc(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Generate runs category, routine, meals, correction and sleep in that order.
// Identical inputs yield identical plans apart from ID and GeneratedAt.
func (e *Engine) Generate(in PlanInput) domain.PlanOfDay {
	category, _ := MatchCategory(&in.CheckIn)
	sel := SelectRoutine(e.catalog, category, &in.Profile, in.Medications)

	exercise := domain.ExercisePlan{
		Category:       category,
		CategoryReason: CategoryReason(category, &in.CheckIn),
		Routine:        sel.Routine,
		SafetyNotes:    sel.Safety.Warnings,
		Adjustments:    sel.Safety.Adjustments,
		Allowed:        sel.Safety.Allowed,
	}

	return domain.PlanOfDay{
		ID:                  e.newID(),
		Date:                in.CheckIn.Date,
		CheckInID:           in.CheckIn.ID,
		ExercisePlan:        exercise,
		MealPlan:            PlanMeals(&in.Profile, &in.CheckIn),
		NextMealCorrection:  CorrectNextMeal(in.TodayMeals, &in.Profile, &in.CheckIn),
		SleepRecommendation: RecommendSleep(&in.Profile, &in.CheckIn, &exercise),
		GeneratedAt:         e.now().UTC(),
	}
}
