package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/antigravity/internal/domain"
	"github.com/alexanderramin/antigravity/internal/repository"
	"github.com/alexanderramin/antigravity/internal/testutil"
)

func TestLogMeal_DefaultsAndInvalidates(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewMealService(r.meals, r.uow)
	seedPlan(t, r, testutil.TestDate)

	m := &domain.MealLog{
		Date:     testutil.TestDate,
		MealType: domain.MealLunch,
		Tags:     []domain.MealTag{domain.TagHighCarb, domain.FoodGrains},
	}
	require.NoError(t, svc.Log(ctx, m))
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, domain.PortionMedium, m.Portion)
	assert.False(t, m.LoggedAt.IsZero())

	requireInvalidated(t, r, testutil.TestDate)

	meals, err := svc.ListByDate(ctx, testutil.TestDate)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, m.Tags, meals[0].Tags)
}

func TestLogMeal_RejectsUnknownTag(t *testing.T) {
	r := setupRepos(t)
	seedPlan(t, r, testutil.TestDate)

	m := testutil.NewTestMeal(domain.MealDinner, []domain.MealTag{"umami_bomb"})
	err := NewMealService(r.meals, r.uow).Log(context.Background(), m)
	assert.ErrorIs(t, err, domain.ErrInvalidEnum)
	requireStillValid(t, r, testutil.TestDate)
}

func TestUpdateMeal_MovingDateInvalidatesBothDays(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewMealService(r.meals, r.uow)

	m := testutil.NewTestMeal(domain.MealDinner, []domain.MealTag{domain.TagAlcohol})
	require.NoError(t, svc.Log(ctx, m))

	seedPlan(t, r, testutil.TestDate)
	seedPlan(t, r, "2026-03-15")
	seedPlan(t, r, "2026-03-16")

	m.Date = "2026-03-15"
	m.Tags = []domain.MealTag{domain.TagHighFat}
	require.NoError(t, svc.Update(ctx, m))

	requireInvalidated(t, r, testutil.TestDate)
	requireInvalidated(t, r, "2026-03-15")
	requireStillValid(t, r, "2026-03-16")

	moved, err := r.meals.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", moved.Date)
	assert.Equal(t, []domain.MealTag{domain.TagHighFat}, moved.Tags)
}

func TestUpdateMeal_Missing(t *testing.T) {
	r := setupRepos(t)
	m := testutil.NewTestMeal(domain.MealSnack, nil)

	err := NewMealService(r.meals, r.uow).Update(context.Background(), m)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteMeal_InvalidatesItsDate(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewMealService(r.meals, r.uow)

	m := testutil.NewTestMeal(domain.MealBreakfast, []domain.MealTag{domain.TagDessert},
		testutil.WithLoggedAt(testNow.Add(-4*time.Hour).UTC()))
	require.NoError(t, svc.Log(ctx, m))
	seedPlan(t, r, testutil.TestDate)

	require.NoError(t, svc.Delete(ctx, m.ID))
	requireInvalidated(t, r, testutil.TestDate)

	meals, err := svc.ListByDate(ctx, testutil.TestDate)
	require.NoError(t, err)
	assert.Empty(t, meals)

	assert.ErrorIs(t, svc.Delete(ctx, m.ID), repository.ErrNotFound)
}

func TestLogMeal_RollbackWhenInvalidationFails(t *testing.T) {
	r := setupRepos(t)
	seedPlan(t, r, testutil.TestDate)

	failUoW := &testutil.FailingExecUoW{DB: r.db, Match: "UPDATE plans", Err: assert.AnError}
	m := testutil.NewTestMeal(domain.MealLunch, []domain.MealTag{domain.TagHighSodium})

	err := NewMealService(r.meals, failUoW).Log(context.Background(), m)
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, failUoW.Failed())

	meals, err := r.meals.ListByDate(context.Background(), testutil.TestDate)
	require.NoError(t, err)
	assert.Empty(t, meals)
	requireStillValid(t, r, testutil.TestDate)
}

func TestUpdateMeal_ObservesMove(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewMealService(r.meals, r.uow, obs)

	m := testutil.NewTestMeal(domain.MealLunch, nil)
	require.NoError(t, svc.Log(ctx, m))

	m.Date = "2026-03-13"
	require.NoError(t, svc.Update(ctx, m))

	e := obs.last()
	assert.Equal(t, "update-meal", e.Name)
	assert.True(t, e.Success)
	assert.Equal(t, "2026-03-13", e.Fields["date"])
	assert.Equal(t, testutil.TestDate, e.Fields["moved_from"])
}

func TestUpdateMeal_RollbackWhenInvalidationFails(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	m := testutil.NewTestMeal(domain.MealDinner, []domain.MealTag{domain.TagAlcohol})
	require.NoError(t, r.meals.Create(ctx, m))
	seedPlan(t, r, testutil.TestDate)

	failUoW := &testutil.FailingExecUoW{DB: r.db, Match: "UPDATE plans", Err: assert.AnError}
	edited := *m
	edited.Tags = []domain.MealTag{domain.TagHighFat}
	err := NewMealService(r.meals, failUoW).Update(ctx, &edited)
	require.ErrorIs(t, err, assert.AnError)

	stored, err := r.meals.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.MealTag{domain.TagAlcohol}, stored.Tags)
	requireStillValid(t, r, testutil.TestDate)
}

func TestDeleteMeal_ObservesOutcome(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewMealService(r.meals, r.uow, obs)

	m := testutil.NewTestMeal(domain.MealSnack, nil)
	require.NoError(t, svc.Log(ctx, m))
	require.NoError(t, svc.Delete(ctx, m.ID))

	e := obs.last()
	assert.Equal(t, "delete-meal", e.Name)
	assert.True(t, e.Success)
	assert.Equal(t, testutil.TestDate, e.Fields["date"])

	require.Error(t, svc.Delete(ctx, m.ID))
	e = obs.last()
	assert.False(t, e.Success)
	assert.ErrorIs(t, e.Err, repository.ErrNotFound)
	assert.NotContains(t, e.Fields, "date")
}
