package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/antigravity/internal/domain"
)

func TestDeriveToppings(t *testing.T) {
	c := checkIn(env(domain.AirStuffy, domain.TempCold, domain.WeatherRainy, domain.LocationIndoor), domain.StressHigh)
	assert.Equal(t, []domain.Topping{domain.ToppingAntiDust, domain.ToppingImmune, domain.ToppingMoodUp}, DeriveToppings(c))

	hot := checkIn(env(domain.AirFresh, domain.TempHot, domain.WeatherSunny, domain.LocationBoth), domain.StressLow)
	assert.Equal(t, []domain.Topping{domain.ToppingHydration}, DeriveToppings(hot))

	calm := checkIn(env(domain.AirFresh, domain.TempWarm, domain.WeatherSunny, domain.LocationBoth), domain.StressLow)
	assert.Empty(t, DeriveToppings(calm))
}

func TestPlanMeals_OrderAndGoalTables(t *testing.T) {
	c := checkIn(env(domain.AirFresh, domain.TempWarm, domain.WeatherSunny, domain.LocationBoth), domain.StressLow)

	plan := PlanMeals(&domain.UserProfile{Goal: domain.GoalMuscleGain}, c)
	assert.Equal(t, domain.MealBreakfast, plan[0].MealType)
	assert.Equal(t, domain.MealLunch, plan[1].MealType)
	assert.Equal(t, domain.MealDinner, plan[2].MealType)
	assert.Equal(t, "2 eggs + Whole-wheat toast + Greek yogurt", plan[0].Suggestion)

	seen := map[string]bool{}
	for _, g := range allGoals {
		p := PlanMeals(&domain.UserProfile{Goal: g}, c)
		for _, item := range p {
			assert.NotEmpty(t, item.Suggestion)
			assert.NotEmpty(t, item.Reason)
		}
		seen[p[0].Suggestion] = true
	}
	assert.Len(t, seen, len(allGoals), "every goal has its own breakfast")
}

func TestPlanMeals_DiabetesStripsSugar(t *testing.T) {
	c := checkIn(env(domain.AirFresh, domain.TempWarm, domain.WeatherSunny, domain.LocationBoth), domain.StressLow)

	gain := PlanMeals(&domain.UserProfile{Goal: domain.GoalWeightGain, Diseases: []domain.Disease{domain.DiseaseDiabetes}}, c)
	assert.Equal(t, "Oatmeal + Nuts + Banana", gain[0].Suggestion)
	assert.Contains(t, gain[0].Reason, diabetesNote)

	relief := PlanMeals(&domain.UserProfile{Goal: domain.GoalStressRelief, Diseases: []domain.Disease{domain.DiseaseDiabetes}}, c)
	assert.Equal(t, "Avocado toast + Egg + Water", relief[0].Suggestion)
	assert.NotContains(t, relief[1].Reason, diabetesNote)
}

func TestPlanMeals_DiseaseAndDigestionNotes(t *testing.T) {
	c := checkIn(env(domain.AirFresh, domain.TempWarm, domain.WeatherSunny, domain.LocationBoth), domain.StressLow)
	c.Digestion = domain.DigestionConstipation
	p := &domain.UserProfile{Goal: domain.GoalDiet, Diseases: []domain.Disease{domain.DiseaseHypertension}}

	plan := PlanMeals(p, c)
	assert.NotContains(t, plan[0].Reason, digestionNote)
	assert.Contains(t, plan[1].Reason, digestionNote)
	assert.Contains(t, plan[2].Reason, hypertensionNote)
	assert.NotContains(t, plan[1].Reason, hypertensionNote)
}

func TestPlanMeals_ToppingsTouchProseOnly(t *testing.T) {
	p := &domain.UserProfile{Goal: domain.GoalDiet}
	plain := PlanMeals(p, checkIn(env(domain.AirFresh, domain.TempWarm, domain.WeatherSunny, domain.LocationBoth), domain.StressLow))
	dusty := PlanMeals(p, checkIn(env(domain.AirStuffy, domain.TempHot, domain.WeatherSunny, domain.LocationBoth), domain.StressLow))

	for i := range dusty {
		assert.Equal(t, plain[i].Suggestion, dusty[i].Suggestion)
		assert.Equal(t, []domain.Topping{domain.ToppingAntiDust, domain.ToppingHydration}, dusty[i].Toppings)
		assert.True(t, strings.HasSuffix(dusty[i].Reason, toppingNotes[domain.ToppingHydration]))
		assert.Contains(t, dusty[i].Reason, toppingNotes[domain.ToppingAntiDust])
	}
}

func TestPlanMeals_ToppingSlicesAreIndependent(t *testing.T) {
	c := checkIn(env(domain.AirStuffy, domain.TempWarm, domain.WeatherSunny, domain.LocationBoth), domain.StressLow)
	plan := PlanMeals(&domain.UserProfile{Goal: domain.GoalDiet}, c)
	plan[0].Toppings[0] = domain.ToppingMoodUp
	assert.Equal(t, domain.ToppingAntiDust, plan[1].Toppings[0])
}
