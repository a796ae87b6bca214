package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/antigravity/internal/db"
	"github.com/alexanderramin/antigravity/internal/domain"
	"github.com/alexanderramin/antigravity/internal/repository"
)

type mealService struct {
	meals    repository.MealLogRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewMealService(meals repository.MealLogRepo, uow db.UnitOfWork, observers ...UseCaseObserver) MealService {
	return &mealService{
		meals:    meals,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *mealService) Log(ctx context.Context, m *domain.MealLog) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "log-meal", startedAt, err, map[string]any{
			"date":      m.Date,
			"meal_type": string(m.MealType),
		})
	}()

	if m.Portion == "" {
		m.Portion = domain.PortionMedium
	}
	if err = m.Validate(); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if m.LoggedAt.IsZero() {
		m.LoggedAt = now
	}

	return db.Scoped(ctx, s.uow, repository.NewStore, func(ctx context.Context, tx *repository.Store) error {
		if err := tx.Meals.Create(ctx, m); err != nil {
			return err
		}
		return tx.InvalidatePlan(ctx, m.Date, now)
	})
}

// Update rewrites a meal. When the meal moves to another date both days'
// plans are invalidated.
func (s *mealService) Update(ctx context.Context, m *domain.MealLog) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"id": m.ID, "date": m.Date}
	defer func() {
		observe(ctx, s.observer, "update-meal", startedAt, err, fields)
	}()

	if err = m.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()

	return db.Scoped(ctx, s.uow, repository.NewStore, func(ctx context.Context, tx *repository.Store) error {
		prev, err := tx.Meals.GetByID(ctx, m.ID)
		if err != nil {
			return err
		}
		if err := tx.Meals.Update(ctx, m); err != nil {
			return err
		}
		if prev.Date != m.Date {
			fields["moved_from"] = prev.Date
			if err := tx.InvalidatePlan(ctx, prev.Date, now); err != nil {
				return err
			}
		}
		return tx.InvalidatePlan(ctx, m.Date, now)
	})
}

func (s *mealService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"id": id}
	defer func() {
		observe(ctx, s.observer, "delete-meal", startedAt, err, fields)
	}()

	now := time.Now().UTC()
	return db.Scoped(ctx, s.uow, repository.NewStore, func(ctx context.Context, tx *repository.Store) error {
		m, err := tx.Meals.GetByID(ctx, id)
		if err != nil {
			return err
		}
		fields["date"] = m.Date
		if err := tx.Meals.Delete(ctx, id); err != nil {
			return err
		}
		return tx.InvalidatePlan(ctx, m.Date, now)
	})
}

func (s *mealService) ListByDate(ctx context.Context, date string) ([]*domain.MealLog, error) {
	return s.meals.ListByDate(ctx, date)
}
