package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/antigravity/internal/db"
	"github.com/alexanderramin/antigravity/internal/domain"
	"github.com/alexanderramin/antigravity/internal/repository"
)

type checkInService struct {
	checkIns repository.CheckInRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewCheckInService(checkIns repository.CheckInRepo, uow db.UnitOfWork, observers ...UseCaseObserver) CheckInService {
	return &checkInService{
		checkIns: checkIns,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Record stores the check-in for its date, replacing any earlier one, and
// invalidates that date's plan.
func (s *checkInService) Record(ctx context.Context, c *domain.DailyCheckIn) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "record-checkin", startedAt, err, map[string]any{"date": c.Date})
	}()

	if err = c.Validate(); err != nil {
		return err
	}
	// Always a fresh id so a stored plan can tell it was built from an older report.
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()

	return db.Scoped(ctx, s.uow, repository.NewStore, func(ctx context.Context, tx *repository.Store) error {
		if err := tx.CheckIns.Upsert(ctx, c); err != nil {
			return err
		}
		return tx.InvalidatePlan(ctx, c.Date, c.CreatedAt)
	})
}

func (s *checkInService) Get(ctx context.Context, date string) (*domain.DailyCheckIn, error) {
	return s.checkIns.GetByDate(ctx, date)
}
