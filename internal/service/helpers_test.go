package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/antigravity/internal/catalog"
	"github.com/alexanderramin/antigravity/internal/db"
	"github.com/alexanderramin/antigravity/internal/domain"
	"github.com/alexanderramin/antigravity/internal/engine"
	"github.com/alexanderramin/antigravity/internal/repository"
	"github.com/alexanderramin/antigravity/internal/testutil"
)

// testNow is noon on testutil.TestDate in local time, so dayKey(testNow) is TestDate.
var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)

type testRepos struct {
	db       *sql.DB
	uow      db.UnitOfWork
	profiles *repository.SQLiteUserProfileRepo
	checkIns *repository.SQLiteCheckInRepo
	meds     *repository.SQLiteMedicationRepo
	meals    *repository.SQLiteMealLogRepo
	plans    *repository.SQLitePlanRepo
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:       database,
		uow:      testutil.NewTestUoW(database),
		profiles: repository.NewSQLiteUserProfileRepo(database),
		checkIns: repository.NewSQLiteCheckInRepo(database),
		meds:     repository.NewSQLiteMedicationRepo(database),
		meals:    repository.NewSQLiteMealLogRepo(database),
		plans:    repository.NewSQLitePlanRepo(database),
	}
}

func newTestPlanService(r testRepos, observers ...UseCaseObserver) PlanService {
	eng := engine.New(catalog.Default(), engine.WithClock(func() time.Time { return testNow }))
	return NewPlanService(eng, r.uow, observers...)
}

// seedPlan stores a valid plan for date and returns it.
func seedPlan(t *testing.T, r testRepos, date string) *domain.PlanOfDay {
	t.Helper()
	p := &domain.PlanOfDay{
		ID:          "seeded-" + date,
		Date:        date,
		CheckInID:   "ci-seeded",
		GeneratedAt: testNow.UTC(),
	}
	require.NoError(t, r.plans.Save(context.Background(), p))
	return p
}

func requireInvalidated(t *testing.T, r testRepos, date string) {
	t.Helper()
	p, err := r.plans.GetByDate(context.Background(), date)
	require.NoError(t, err)
	require.False(t, p.IsValid(), "plan for %s should be invalidated", date)
}

func requireStillValid(t *testing.T, r testRepos, date string) {
	t.Helper()
	p, err := r.plans.GetByDate(context.Background(), date)
	require.NoError(t, err)
	require.True(t, p.IsValid(), "plan for %s should still be valid", date)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
