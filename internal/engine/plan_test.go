package engine

import (
	"math/rand"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/antigravity/internal/catalog"
	"github.com/alexanderramin/antigravity/internal/domain"
)

var fixedNow = time.Date(2026, 3, 14, 6, 30, 0, 0, time.UTC)

func fixedEngine() *Engine {
	n := 0
	return New(catalog.Default(),
		WithClock(func() time.Time { return fixedNow }),
		WithIDFunc(func() string { n++; return "plan-" + strconv.Itoa(n) }),
	)
}

func TestGenerate_ComposesAllParts(t *testing.T) {
	in := PlanInput{
		Profile: domain.UserProfile{
			Goal:         domain.GoalWeightManagement,
			Diseases:     []domain.Disease{domain.DiseaseHypertension},
			SleepProfile: domain.SleepProfile{UsualWakeup: "07:00"},
		},
		CheckIn: domain.DailyCheckIn{
			ID:          "ci-1",
			Date:        "2026-03-14",
			Mood:        domain.MoodLow,
			Stress:      domain.StressHigh,
			Environment: env(domain.AirFresh, domain.TempCool, domain.WeatherSunny, domain.LocationOutdoor),
		},
		Medications: []domain.MedicationEntry{{Name: "Zolpidem", Tags: []domain.MedicationTag{domain.MedDrowsiness}}},
		TodayMeals:  []domain.MealLog{meal(12, domain.TagAlcohol)},
	}

	plan := fixedEngine().Generate(in)
	assert.Equal(t, "plan-1", plan.ID)
	assert.Equal(t, "2026-03-14", plan.Date)
	assert.Equal(t, "ci-1", plan.CheckInID)
	assert.Equal(t, fixedNow, plan.GeneratedAt)
	assert.True(t, plan.IsValid())

	assert.Equal(t, domain.CategoryMB, plan.ExercisePlan.Category)
	assert.Equal(t, "routine-MB-muscle_gain-beginner", plan.ExercisePlan.Routine.ID)
	assert.True(t, plan.ExercisePlan.Allowed)
	assert.Contains(t, plan.ExercisePlan.CategoryReason, "stress")

	assert.Contains(t, plan.MealPlan[2].Reason, hypertensionNote)
	require.NotNil(t, plan.NextMealCorrection)
	assert.Equal(t, []domain.MealTag{domain.TagAlcohol}, plan.NextMealCorrection.FocusTags)

	assert.Equal(t, 8.0, plan.SleepRecommendation.Hours)
	require.NotNil(t, plan.SleepRecommendation.BedtimeWindow)
	assert.Equal(t, "23:00", plan.SleepRecommendation.BedtimeWindow.Start)
}

func TestGenerate_DeterministicModuloIDAndTime(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	e := New(catalog.Default())
	for trial := 0; trial < 200; trial++ {
		in := PlanInput{
			Profile:     randomProfile(rng),
			CheckIn:     randomCheckIn(rng),
			Medications: randomMeds(rng),
			TodayMeals:  randomMeals(rng),
		}
		a := e.Generate(in)
		b := e.Generate(in)

		assert.NotEqual(t, a.ID, b.ID)
		a.ID, b.ID = "", ""
		a.GeneratedAt, b.GeneratedAt = time.Time{}, time.Time{}
		assert.Equal(t, a, b, "trial %d", trial)
	}
}

func TestGenerate_DoesNotMutateInputs(t *testing.T) {
	meds := []domain.MedicationEntry{{Name: "Warfarin", Tags: []domain.MedicationTag{domain.MedBleedingRisk}}}
	meals := []domain.MealLog{meal(9, domain.TagHighCarb), meal(8, domain.TagDessert)}
	in := PlanInput{
		Profile:     domain.UserProfile{Goal: domain.GoalDiet, Diseases: []domain.Disease{domain.DiseaseDiabetes}},
		CheckIn:     *calmCheckIn(),
		Medications: meds,
		TodayMeals:  meals,
	}
	fixedEngine().Generate(in)

	assert.Equal(t, domain.TagHighCarb, meals[0].Tags[0])
	assert.Equal(t, "Warfarin", meds[0].Name)
	assert.Equal(t, []domain.Disease{domain.DiseaseDiabetes}, in.Profile.Diseases)

	// Catalog data is untouched by the returned copy.
	plan := fixedEngine().Generate(in)
	plan.ExercisePlan.Routine.Main = nil
	r, _ := catalog.Default().ByID(plan.ExercisePlan.Routine.ID)
	assert.NotEmpty(t, r.Main)
}

func TestGenerate_ConcurrentCallers(t *testing.T) {
	e := New(catalog.Default())
	in := PlanInput{Profile: domain.UserProfile{Goal: domain.GoalStressRelief}, CheckIn: *calmCheckIn()}
	want := e.Generate(in).ExercisePlan.Routine.ID

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Generate(in).ExercisePlan.Routine.ID
		}(i)
	}
	wg.Wait()
	for _, id := range results {
		assert.Equal(t, want, id)
	}
}

func TestCoachFacts(t *testing.T) {
	in := PlanInput{Profile: domain.UserProfile{Goal: domain.GoalDiet}, CheckIn: *calmCheckIn()}
	in.CheckIn.Mood = domain.MoodGreat
	plan := fixedEngine().Generate(in)

	facts := plan.CoachFacts(&in.Profile, &in.CheckIn)
	assert.Equal(t, domain.GoalDiet, facts.Goal)
	assert.Equal(t, domain.MoodGreat, facts.Mood)
	assert.Equal(t, domain.CategorySO, facts.Category)
	assert.Equal(t, plan.ExercisePlan.Routine.Name, facts.RoutineName)
	assert.Equal(t, plan.MealPlan[0].Suggestion, facts.FirstMealSuggestion)
	assert.Equal(t, plan.SleepRecommendation.Hours, facts.SleepHours)
}
