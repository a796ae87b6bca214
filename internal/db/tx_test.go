package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/antigravity/internal/db"
	"github.com/alexanderramin/antigravity/internal/domain"
	"github.com/alexanderramin/antigravity/internal/repository"
	"github.com/alexanderramin/antigravity/internal/testutil"
)

func TestScoped_CommitIsVisibleToOtherConnections(t *testing.T) {
	conn, path := testutil.NewFileTestDB(t)
	uow := db.NewSQLiteUnitOfWork(conn)
	meal := testutil.NewTestMeal(domain.MealLunch, []domain.MealTag{domain.TagHighFat})

	err := db.Scoped(t.Context(), uow, repository.NewStore, func(ctx context.Context, tx *repository.Store) error {
		if err := tx.Meals.Create(ctx, meal); err != nil {
			return err
		}
		return tx.CheckIns.Upsert(ctx, testutil.NewTestCheckIn())
	})
	require.NoError(t, err)

	other, err := db.OpenDB(path)
	require.NoError(t, err)
	defer other.Close()

	got, err := repository.NewStore(other).Meals.GetByID(t.Context(), meal.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.MealTag{domain.TagHighFat}, got.Tags)
	assert.Equal(t, 1, testutil.CountRows(t, other, "check_ins"))
}

func TestScoped_ErrorRollsBackEveryRepository(t *testing.T) {
	conn := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(conn)
	rejected := errors.New("check-in rejected")

	err := db.Scoped(t.Context(), uow, repository.NewStore, func(ctx context.Context, tx *repository.Store) error {
		if err := tx.Meals.Create(ctx, testutil.NewTestMeal(domain.MealDinner, nil)); err != nil {
			return err
		}
		if err := tx.Medications.Create(ctx, testutil.NewTestMedication("Losartan")); err != nil {
			return err
		}
		return rejected
	})
	require.ErrorIs(t, err, rejected)

	assert.Zero(t, testutil.CountRows(t, conn, "meal_logs"))
	assert.Zero(t, testutil.CountRows(t, conn, "medications"))
}

func TestWithinTx_PanicRollsBackAndPropagates(t *testing.T) {
	conn := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(conn)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(t.Context(), func(ctx context.Context, tx db.DBTX) error {
			_ = repository.NewSQLiteMealLogRepo(tx).Create(ctx, testutil.NewTestMeal(domain.MealSnack, nil))
			panic("boom")
		})
	})

	assert.Zero(t, testutil.CountRows(t, conn, "meal_logs"))
}

func TestWithinTx_BeginFailureSkipsWork(t *testing.T) {
	conn := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(conn)
	require.NoError(t, conn.Close())

	called := false
	err := uow.WithinTx(t.Context(), func(context.Context, db.DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "beginning transaction")
	assert.False(t, called)
}

func TestWithinTx_CanceledContextRollsBack(t *testing.T) {
	conn := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(conn)
	ctx, cancel := context.WithCancel(t.Context())

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteMealLogRepo(tx).Create(ctx, testutil.NewTestMeal(domain.MealLunch, nil)); err != nil {
			return err
		}
		cancel()
		return ctx.Err()
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, testutil.CountRows(t, conn, "meal_logs"))
}
