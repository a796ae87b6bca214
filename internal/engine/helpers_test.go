package engine

import (
	"math/rand"
	"time"

	"github.com/alexanderramin/antigravity/internal/domain"
)

func pick[T any](rng *rand.Rand, vals []T) T {
	return vals[rng.Intn(len(vals))]
}

func checkIn(env domain.EnvironmentReport, stress domain.StressLevel) *domain.DailyCheckIn {
	return &domain.DailyCheckIn{
		Date:        "2026-03-14",
		Mood:        domain.MoodNeutral,
		Stress:      stress,
		Environment: env,
	}
}

func env(air domain.AirQuality, temp domain.TemperatureFeel, weather domain.PerceivedWeather, loc domain.ActivityLocation) domain.EnvironmentReport {
	return domain.EnvironmentReport{
		AirQuality:       air,
		TemperatureFeel:  temp,
		PerceivedWeather: weather,
		ActivityLocation: loc,
	}
}

var (
	allGoals     = []domain.Goal{domain.GoalWeightManagement, domain.GoalDiet, domain.GoalMuscleGain, domain.GoalWeightGain, domain.GoalStressRelief}
	allDiseases  = []domain.Disease{domain.DiseaseDiabetes, domain.DiseaseObesity, domain.DiseaseHypertension, domain.DiseaseHyperlipidemia, domain.DiseaseHeartFailure, domain.DiseaseOsteoporosis, domain.DiseaseHyperthyroidism, domain.DiseaseHypothyroidism}
	allMedTags   = []domain.MedicationTag{domain.MedDrowsiness, domain.MedDehydrationRisk, domain.MedOrthostaticDizziness, domain.MedBleedingRisk}
	allMealTags  = []domain.MealTag{domain.TagHighProtein, domain.TagHighCarb, domain.TagHighFat, domain.TagHighSodium, domain.TagLowVeggie, domain.TagAlcohol, domain.TagDessert, domain.FoodSoup, domain.FoodSpicy}
	allMoods     = []domain.Mood{domain.MoodGreat, domain.MoodGood, domain.MoodNeutral, domain.MoodLow, domain.MoodStressed}
	allStress    = []domain.StressLevel{domain.StressLow, domain.StressMedium, domain.StressHigh}
	allDigestion = []domain.Digestion{"", domain.DigestionNormal, domain.DigestionBloated, domain.DigestionDiarrhea, domain.DigestionConstipation}
	allSleep     = []domain.SleepQuality{"", domain.SleepGood, domain.SleepFair, domain.SleepPoor}
	allWeather   = []domain.PerceivedWeather{domain.WeatherSunny, domain.WeatherCloudy, domain.WeatherRainy}
	allTemps     = []domain.TemperatureFeel{domain.TempCold, domain.TempCool, domain.TempWarm, domain.TempHot}
	allAir       = []domain.AirQuality{domain.AirFresh, domain.AirNormal, domain.AirStuffy}
	allLocations = []domain.ActivityLocation{domain.LocationIndoor, domain.LocationOutdoor, domain.LocationBoth}
)

func randomCheckIn(rng *rand.Rand) domain.DailyCheckIn {
	return domain.DailyCheckIn{
		ID:           "ci-1",
		Date:         "2026-03-14",
		Mood:         pick(rng, allMoods),
		Stress:       pick(rng, allStress),
		Digestion:    pick(rng, allDigestion),
		SleepQuality: pick(rng, allSleep),
		Environment:  env(pick(rng, allAir), pick(rng, allTemps), pick(rng, allWeather), pick(rng, allLocations)),
	}
}

func randomProfile(rng *rand.Rand) domain.UserProfile {
	p := domain.UserProfile{ID: domain.DefaultProfileID, Goal: pick(rng, allGoals)}
	for _, d := range allDiseases {
		if rng.Intn(4) == 0 {
			p.Diseases = append(p.Diseases, d)
		}
	}
	if rng.Intn(2) == 0 {
		p.SleepProfile.UsualWakeup = domain.FormatClock(rng.Intn(1440))
	}
	return p
}

func randomMeds(rng *rand.Rand) []domain.MedicationEntry {
	n := rng.Intn(4)
	meds := make([]domain.MedicationEntry, n)
	for i := range meds {
		meds[i] = domain.MedicationEntry{Name: "med-" + string(rune('A'+i))}
		for _, tag := range allMedTags {
			if rng.Intn(3) == 0 {
				meds[i].Tags = append(meds[i].Tags, tag)
			}
		}
	}
	return meds
}

func randomMeals(rng *rand.Rand) []domain.MealLog {
	n := rng.Intn(4)
	base := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	meals := make([]domain.MealLog, n)
	for i := range meals {
		meals[i] = domain.MealLog{
			Date:     "2026-03-14",
			MealType: domain.MealLunch,
			LoggedAt: base.Add(time.Duration(rng.Intn(12)) * time.Hour),
		}
		for _, tag := range allMealTags {
			if rng.Intn(3) == 0 {
				meals[i].Tags = append(meals[i].Tags, tag)
			}
		}
	}
	return meals
}
