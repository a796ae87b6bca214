package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/antigravity/internal/domain"
)

// TestDate is the day most fixtures are logged against.
const TestDate = "2026-03-14"

type ProfileOption func(*domain.UserProfile)

func WithGoal(g domain.Goal) ProfileOption {
	return func(p *domain.UserProfile) { p.Goal = g }
}

func WithDiseases(ds ...domain.Disease) ProfileOption {
	return func(p *domain.UserProfile) { p.Diseases = ds }
}

func WithWakeup(hhmm string) ProfileOption {
	return func(p *domain.UserProfile) { p.SleepProfile.UsualWakeup = hhmm }
}

func NewTestProfile(opts ...ProfileOption) *domain.UserProfile {
	now := time.Now().UTC()
	p := &domain.UserProfile{
		ID:        domain.DefaultProfileID,
		Goal:      domain.GoalDiet,
		InBody:    domain.InBody{HeightCm: 170, WeightKg: 68},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

type CheckInOption func(*domain.DailyCheckIn)

func WithDate(date string) CheckInOption {
	return func(c *domain.DailyCheckIn) { c.Date = date }
}

func WithStress(s domain.StressLevel) CheckInOption {
	return func(c *domain.DailyCheckIn) { c.Stress = s }
}

func WithSleepQuality(q domain.SleepQuality) CheckInOption {
	return func(c *domain.DailyCheckIn) { c.SleepQuality = q }
}

func WithEnvironment(air domain.AirQuality, temp domain.TemperatureFeel, weather domain.PerceivedWeather, loc domain.ActivityLocation) CheckInOption {
	return func(c *domain.DailyCheckIn) {
		c.Environment = domain.EnvironmentReport{
			AirQuality:       air,
			TemperatureFeel:  temp,
			PerceivedWeather: weather,
			ActivityLocation: loc,
		}
	}
}

// NewTestCheckIn defaults to a calm, sunny, fresh-air day on TestDate.
func NewTestCheckIn(opts ...CheckInOption) *domain.DailyCheckIn {
	c := &domain.DailyCheckIn{
		ID:     uuid.New().String(),
		Date:   TestDate,
		Mood:   domain.MoodGood,
		Stress: domain.StressLow,
		Environment: domain.EnvironmentReport{
			PerceivedWeather: domain.WeatherSunny,
			TemperatureFeel:  domain.TempWarm,
			AirQuality:       domain.AirFresh,
			ActivityLocation: domain.LocationBoth,
		},
		CreatedAt: time.Now().UTC(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func NewTestMedication(name string, tags ...domain.MedicationTag) *domain.MedicationEntry {
	return &domain.MedicationEntry{
		ID:              uuid.New().String(),
		Name:            name,
		Tags:            tags,
		ConfirmedByUser: true,
		AddedVia:        domain.SourceManual,
		CreatedAt:       time.Now().UTC(),
	}
}

type MealOption func(*domain.MealLog)

func WithMealDate(date string) MealOption {
	return func(m *domain.MealLog) { m.Date = date }
}

func WithLoggedAt(t time.Time) MealOption {
	return func(m *domain.MealLog) { m.LoggedAt = t }
}

func WithCalories(kcal int) MealOption {
	return func(m *domain.MealLog) { m.EstimatedCalories = &kcal }
}

func NewTestMeal(mealType domain.MealType, tags []domain.MealTag, opts ...MealOption) *domain.MealLog {
	m := &domain.MealLog{
		ID:       uuid.New().String(),
		Date:     TestDate,
		MealType: mealType,
		Tags:     tags,
		Portion:  domain.PortionMedium,
		LoggedAt: time.Now().UTC(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}
