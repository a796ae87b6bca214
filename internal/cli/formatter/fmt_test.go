package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/antigravity/internal/catalog"
	"github.com/alexanderramin/antigravity/internal/contract"
	"github.com/alexanderramin/antigravity/internal/domain"
)

func samplePlan() *contract.PlanResponse {
	return &contract.PlanResponse{
		Plan: domain.PlanOfDay{
			ID:   "plan-1",
			Date: "2026-03-14",
			ExercisePlan: domain.ExercisePlan{
				Category:       domain.CategoryPH,
				CategoryReason: "The air feels stuffy today, so an indoor workout is the safer choice.",
				Routine: domain.RoutineTemplate{
					Name:             "Clean Air Home Circuit",
					NameKo:           "실내 서킷",
					TotalDurationMin: 30,
					Intensity:        domain.IntensityModerate,
				},
				SafetyNotes: []string{"Your medication (Warfarin) raises bleeding risk."},
				Adjustments: []string{"Keep effort conversational."},
				Allowed:     true,
			},
			MealPlan: [3]domain.MealPlanItem{
				{MealType: domain.MealBreakfast, Suggestion: "Oatmeal + Berries", Toppings: []domain.Topping{domain.ToppingAntiDust}},
				{MealType: domain.MealLunch, Suggestion: "Brown rice + Chicken"},
				{MealType: domain.MealDinner, Suggestion: "Tofu + Greens", Reason: "Light dinner."},
			},
			NextMealCorrection: &domain.NextMealCorrection{
				Suggestion: "Vegetable soup",
				Reason:     "Your last meal was salty.",
			},
			SleepRecommendation: domain.SleepRecommendation{
				Hours:         8,
				BedtimeWindow: &domain.BedtimeWindow{Start: "22:30", End: "23:00"},
				Reason:        "Recover from a stressful day.",
			},
		},
		Reused: true,
	}
}

func TestFormatPlan(t *testing.T) {
	out := stripANSI(FormatPlan(samplePlan()))

	for _, want := range []string{
		"PLAN FOR SAT, MAR 14",
		"stored plan",
		"PH Purifying Home",
		"Clean Air Home Circuit",
		"30m",
		"moderate",
		"cleared",
		"Warfarin",
		"Keep effort conversational.",
		"Oatmeal + Berries",
		"anti-dust",
		"Dinner: Light dinner.",
		"Next meal: Vegetable soup",
		"8h",
		"bed between 22:30 and 23:00",
	} {
		assert.Contains(t, out, want)
	}
}

func TestFormatPlan_BlockedRoutineWithoutCorrection(t *testing.T) {
	resp := samplePlan()
	resp.Reused = false
	resp.Plan.ExercisePlan.Allowed = false
	resp.Plan.NextMealCorrection = nil
	resp.Plan.SleepRecommendation.BedtimeWindow = nil

	out := stripANSI(FormatPlan(resp))
	assert.Contains(t, out, "not recommended")
	assert.NotContains(t, out, "Next meal")
	assert.NotContains(t, out, "bed between")
	assert.NotContains(t, out, "stored plan")
}

func TestFormatRoutine_FromCatalog(t *testing.T) {
	r, ok := catalog.Default().ByID("routine-SO-diet-beginner")
	if !assert.True(t, ok) {
		return
	}
	out := stripANSI(FormatRoutine(r))
	assert.Contains(t, out, "SUNNY WALK")
	assert.Contains(t, out, "SO Sunlit Outdoor")
	assert.Contains(t, out, "WARM-UP")
	assert.Contains(t, out, "DEHYDRATION_RISK_POSSIBLE")
}

func TestFormatRoutineList(t *testing.T) {
	out := stripANSI(FormatRoutineList(catalog.Default().ByCategory(domain.CategoryMB)))
	assert.Contains(t, out, "routine-MB-diet-beginner")
	assert.NotContains(t, out, "routine-SO-")

	assert.Contains(t, stripANSI(FormatRoutineList(nil)), "No routines.")
}

func TestDescribeSet(t *testing.T) {
	assert.Equal(t, "3×12", describeSet(domain.ExerciseSet{Sets: 3, Reps: 12}))
	assert.Equal(t, "10 reps", describeSet(domain.ExerciseSet{Reps: 10}))
	assert.Equal(t, "1m 30s", describeSet(domain.ExerciseSet{DurationSec: 90}))
	assert.Equal(t, "5m", describeSet(domain.ExerciseSet{DurationSec: 300}))
	assert.Equal(t, "", describeSet(domain.ExerciseSet{}))
}

func TestFormatMeals(t *testing.T) {
	kcal := 650
	meals := []*domain.MealLog{{
		ID:                "meal-0001-abcdef",
		Date:              "2026-03-14",
		MealType:          domain.MealLunch,
		Tags:              []domain.MealTag{domain.TagHighSodium, domain.FoodSoup},
		Portion:           domain.PortionLarge,
		EstimatedCalories: &kcal,
		LoggedAt:          time.Date(2026, 3, 14, 12, 30, 0, 0, time.Local),
	}}

	out := stripANSI(FormatMeals("2026-03-14", meals))
	assert.Contains(t, out, "12:30")
	assert.Contains(t, out, "Lunch")
	assert.Contains(t, out, "high_sodium, soup")
	assert.Contains(t, out, "650")
	assert.Contains(t, out, "meal-000")

	assert.Contains(t, stripANSI(FormatMeals("2026-03-14", nil)), "No meals logged")
}

func TestFormatMedicationsAndDrugs(t *testing.T) {
	meds := []*domain.MedicationEntry{
		{ID: "m1", Name: "Warfarin", Tags: []domain.MedicationTag{domain.MedBleedingRisk}, AddedVia: domain.SourceSearch},
		{ID: "m2", Name: "Vitamin D", AddedVia: domain.SourceManual},
	}
	out := stripANSI(FormatMedications(meds))
	assert.Contains(t, out, "BLEEDING_RISK_CAUTION")
	assert.Contains(t, out, "none")
	assert.Contains(t, out, "search")

	drugs := stripANSI(FormatDrugs(catalog.DefaultDrugs().Search("statin")))
	assert.Contains(t, drugs, "Atorvastatin")
	assert.Contains(t, drugs, "Rosuvastatin")
}

func TestFormatProfile(t *testing.T) {
	p := &domain.UserProfile{
		Goal:         domain.GoalMuscleGain,
		Diseases:     []domain.Disease{domain.DiseaseHypertension},
		SleepProfile: domain.SleepProfile{UsualBedtime: "23:30", UsualWakeup: "07:00", IsShiftWorker: true},
		InBody:       domain.InBody{HeightCm: 175.5, WeightKg: 70},
	}
	out := stripANSI(FormatProfile(p))
	assert.Contains(t, out, "Muscle gain")
	assert.Contains(t, out, "hypertension")
	assert.Contains(t, out, "23:30 → 07:00")
	assert.Contains(t, out, "shift work")
	assert.Contains(t, out, "175.5 cm")
	assert.Contains(t, out, "70 kg")
}

func TestFormatCheckIn(t *testing.T) {
	out := stripANSI(FormatCheckIn(&domain.DailyCheckIn{
		Date:   "2026-03-14",
		Mood:   domain.MoodLow,
		Stress: domain.StressHigh,
		Environment: domain.EnvironmentReport{
			PerceivedWeather: domain.WeatherRainy,
			TemperatureFeel:  domain.TempCold,
			AirQuality:       domain.AirStuffy,
			ActivityLocation: domain.LocationIndoor,
		},
	}))

	assert.Contains(t, out, "CHECK-IN FOR SAT, MAR 14")
	assert.Contains(t, out, "rainy, cold")
	assert.Contains(t, out, "not reported")
	assert.Contains(t, out, "indoor")
}

func TestFormatWeeklyReport(t *testing.T) {
	r := &contract.WeeklyReport{
		StartDate: "2026-03-08",
		EndDate:   "2026-03-14",
		Days: []contract.DayMeals{
			{Date: "2026-03-08", Meals: 0},
			{Date: "2026-03-09", Meals: 2},
			{Date: "2026-03-10", Meals: 0},
			{Date: "2026-03-11", Meals: 0},
			{Date: "2026-03-12", Meals: 1},
			{Date: "2026-03-13", Meals: 4},
			{Date: "2026-03-14", Meals: 3},
		},
		TotalMeals:  10,
		TopTags:     []contract.TagCount{{Tag: domain.TagHighCarb, Count: 5}, {Tag: domain.FoodSoup, Count: 2}},
		Streak:      3,
		Medications: 1,
		Goal:        domain.GoalDiet,
		BMI:         &contract.BMIReading{Value: 23.5, Class: domain.BMIOverweight},
	}
	out := stripANSI(FormatWeeklyReport(r))

	assert.Contains(t, out, "WEEK SUN, MAR 8 TO SAT, MAR 14")
	assert.Contains(t, out, "3 days")
	assert.Contains(t, out, "23.5 (overweight)")
	assert.Contains(t, out, "Diet")
	assert.Contains(t, out, "Fri 13 "+strings.Repeat("█", 20)+" 4")
	assert.Contains(t, out, "Thu 12 "+strings.Repeat("█", 5)+" 1")
	assert.Contains(t, out, "Sun 8  · 0")
	assert.Contains(t, out, "high_carb")
	assert.NotContains(t, out, "No tagged meals")
}

func TestFormatWeeklyReport_EmptyWeek(t *testing.T) {
	r := &contract.WeeklyReport{StartDate: "2026-03-08", EndDate: "2026-03-14", Streak: 1}
	out := stripANSI(FormatWeeklyReport(r))

	assert.Contains(t, out, "1 day")
	assert.Contains(t, out, "no profile")
	assert.Contains(t, out, "No tagged meals this week.")
}
