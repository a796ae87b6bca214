package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/antigravity/internal/db"
)

var (
	_ UserProfileRepo = (*SQLiteUserProfileRepo)(nil)
	_ CheckInRepo     = (*SQLiteCheckInRepo)(nil)
	_ MedicationRepo  = (*SQLiteMedicationRepo)(nil)
	_ MealLogRepo     = (*SQLiteMealLogRepo)(nil)
	_ PlanRepo        = (*SQLitePlanRepo)(nil)
)

// Store groups the repositories that share one connection or transaction.
// Services build it per transaction through db.Scoped.
type Store struct {
	Profiles    *SQLiteUserProfileRepo
	CheckIns    *SQLiteCheckInRepo
	Medications *SQLiteMedicationRepo
	Meals       *SQLiteMealLogRepo
	Plans       *SQLitePlanRepo
}

func NewStore(conn db.DBTX) *Store {
	return &Store{
		Profiles:    NewSQLiteUserProfileRepo(conn),
		CheckIns:    NewSQLiteCheckInRepo(conn),
		Medications: NewSQLiteMedicationRepo(conn),
		Meals:       NewSQLiteMealLogRepo(conn),
		Plans:       NewSQLitePlanRepo(conn),
	}
}

// InvalidatePlan marks the plan for date stale. Callers run it in the same
// transaction as the input write that made the plan stale.
func (s *Store) InvalidatePlan(ctx context.Context, date string, at time.Time) error {
	if err := s.Plans.Invalidate(ctx, date, at); err != nil {
		return fmt.Errorf("invalidating plan for %s: %w", date, err)
	}
	return nil
}
