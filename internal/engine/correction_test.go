package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/antigravity/internal/domain"
)

func meal(at int, tags ...domain.MealTag) domain.MealLog {
	return domain.MealLog{
		Date:     "2026-03-14",
		MealType: domain.MealLunch,
		Tags:     tags,
		LoggedAt: time.Date(2026, 3, 14, at, 0, 0, 0, time.UTC),
	}
}

func calmCheckIn() *domain.DailyCheckIn {
	return checkIn(env(domain.AirFresh, domain.TempWarm, domain.WeatherSunny, domain.LocationBoth), domain.StressLow)
}

func TestCorrectNextMeal_NoMeals(t *testing.T) {
	stressed := calmCheckIn()
	stressed.Stress = domain.StressHigh
	assert.Nil(t, CorrectNextMeal(nil, &domain.UserProfile{}, stressed))
}

func TestCorrectNextMeal_Alcohol(t *testing.T) {
	c := CorrectNextMeal([]domain.MealLog{meal(20, domain.TagAlcohol)}, &domain.UserProfile{}, calmCheckIn())
	require.NotNil(t, c)
	assert.Contains(t, c.Suggestion, "Rehydrate")
	assert.Contains(t, c.Suggestion, "light")
	assert.Empty(t, c.Reason)
	assert.Equal(t, []domain.MealTag{domain.TagAlcohol}, c.FocusTags)
}

func TestCorrectNextMeal_UsesLatestMealOnly(t *testing.T) {
	meals := []domain.MealLog{
		meal(19, domain.TagDessert),
		meal(8, domain.TagHighFat),
	}
	c := CorrectNextMeal(meals, &domain.UserProfile{}, calmCheckIn())
	require.NotNil(t, c)
	assert.Equal(t, []domain.MealTag{domain.TagDessert}, c.FocusTags)
}

func TestLatestMeal_TieGoesToLaterEntry(t *testing.T) {
	meals := []domain.MealLog{meal(12, domain.TagHighFat), meal(12, domain.TagLowVeggie)}
	assert.Equal(t, domain.TagLowVeggie, LatestMeal(meals).Tags[0])
}

func TestCorrectNextMeal_MultipleChecksConcatenate(t *testing.T) {
	stressed := calmCheckIn()
	stressed.Stress = domain.StressHigh
	m := meal(13, domain.TagHighProtein, domain.TagHighSodium, domain.TagHighFat)

	c := CorrectNextMeal([]domain.MealLog{m}, &domain.UserProfile{}, stressed)
	require.NotNil(t, c)
	assert.Equal(t, "Your last meal was high in sodium. Go low-sodium for the next one!", c.Suggestion)
	assert.Equal(t,
		"Eat plenty of vegetables and drink lots of water. "+
			"That was a rich, oily meal. Keep the next one light and plain! "+
			"When stress is high, steady carbohydrates and omega-3 help.",
		c.Reason)
	assert.Equal(t, []domain.MealTag{domain.TagHighSodium, domain.TagHighFat}, c.FocusTags)
}

func TestCorrectNextMeal_CarbWithProteinIsFine(t *testing.T) {
	c := CorrectNextMeal([]domain.MealLog{meal(13, domain.TagHighCarb, domain.TagHighProtein)}, &domain.UserProfile{}, calmCheckIn())
	assert.Nil(t, c)
}

func TestCorrectNextMeal_StressOnly(t *testing.T) {
	stressed := calmCheckIn()
	stressed.Stress = domain.StressHigh
	c := CorrectNextMeal([]domain.MealLog{meal(13, domain.FoodSoup)}, &domain.UserProfile{}, stressed)
	require.NotNil(t, c)
	assert.Empty(t, c.FocusTags)
	assert.Contains(t, c.Suggestion, "stress")
}

// TestCorrectNextMeal_NeverWithoutEvidence fuzzes meals and asserts a
// correction only appears when a tag or high stress triggered it.
func TestCorrectNextMeal_NeverWithoutEvidence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	analysis := []domain.MealTag{domain.TagHighFat, domain.TagLowVeggie, domain.TagAlcohol, domain.TagDessert, domain.TagHighSodium, domain.TagHighCarb}
	for trial := 0; trial < 200; trial++ {
		meals := randomMeals(rng)
		c := randomCheckIn(rng)
		got := CorrectNextMeal(meals, &domain.UserProfile{}, &c)
		if len(meals) == 0 {
			assert.Nil(t, got, "trial %d", trial)
			continue
		}
		last := LatestMeal(meals)
		evidence := c.Stress == domain.StressHigh
		for _, tag := range analysis {
			if tag == domain.TagHighSodium && !last.HasTag(domain.TagHighProtein) {
				continue
			}
			if tag == domain.TagHighCarb && last.HasTag(domain.TagHighProtein) {
				continue
			}
			evidence = evidence || last.HasTag(tag)
		}
		if evidence {
			assert.NotNil(t, got, "trial %d", trial)
		} else {
			assert.Nil(t, got, "trial %d", trial)
		}
	}
}
