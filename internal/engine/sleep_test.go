package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/antigravity/internal/domain"
)

func lowPlan() *domain.ExercisePlan {
	return &domain.ExercisePlan{Routine: domain.RoutineTemplate{Intensity: domain.IntensityLow}}
}

func TestRecommendSleep_Baseline(t *testing.T) {
	rec := RecommendSleep(&domain.UserProfile{Goal: domain.GoalDiet}, calmCheckIn(), lowPlan())
	assert.Equal(t, BaseSleepHours, rec.Hours)
	assert.Nil(t, rec.BedtimeWindow)
	assert.Equal(t, defaultSleepReason, rec.Reason)
}

func TestRecommendSleep_BedtimeWindow(t *testing.T) {
	c := calmCheckIn()
	c.Stress = domain.StressHigh
	p := &domain.UserProfile{Goal: domain.GoalDiet, SleepProfile: domain.SleepProfile{UsualWakeup: "07:00"}}

	rec := RecommendSleep(p, c, lowPlan())
	assert.Equal(t, 8.0, rec.Hours)
	require.NotNil(t, rec.BedtimeWindow)
	assert.Equal(t, "23:00", rec.BedtimeWindow.Start)
	assert.Equal(t, "00:00", rec.BedtimeWindow.End)
	assert.Contains(t, rec.Reason, "23:00 and 00:00")
	assert.Contains(t, rec.Reason, "stress")
}

func TestRecommendSleep_HalfHourWindow(t *testing.T) {
	p := &domain.UserProfile{Goal: domain.GoalDiet, SleepProfile: domain.SleepProfile{UsualWakeup: "06:00"}}
	rec := RecommendSleep(p, calmCheckIn(), lowPlan())
	require.NotNil(t, rec.BedtimeWindow)
	assert.Equal(t, "22:30", rec.BedtimeWindow.Start)
	assert.Equal(t, "23:30", rec.BedtimeWindow.End)
	assert.NotContains(t, rec.Reason, defaultSleepReason)
}

func TestRecommendSleep_CappedAtNine(t *testing.T) {
	c := calmCheckIn()
	c.Stress = domain.StressHigh
	c.SleepQuality = domain.SleepPoor
	high := &domain.ExercisePlan{Routine: domain.RoutineTemplate{Intensity: domain.IntensityHigh}}

	rec := RecommendSleep(&domain.UserProfile{Goal: domain.GoalMuscleGain}, c, high)
	assert.Equal(t, MaxSleepHours, rec.Hours)
	assert.Contains(t, rec.Reason, "recover")
}

func TestRecommendSleep_HighIntensityCountsOnce(t *testing.T) {
	high := &domain.ExercisePlan{Routine: domain.RoutineTemplate{Intensity: domain.IntensityHigh}}
	rec := RecommendSleep(&domain.UserProfile{Goal: domain.GoalMuscleGain}, calmCheckIn(), high)
	assert.Equal(t, 8.0, rec.Hours)
}

func TestRecommendSleep_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	intensities := []domain.Intensity{domain.IntensityLow, domain.IntensityModerate, domain.IntensityHigh}
	for trial := 0; trial < 200; trial++ {
		p := randomProfile(rng)
		c := randomCheckIn(rng)
		plan := &domain.ExercisePlan{Routine: domain.RoutineTemplate{Intensity: pick(rng, intensities)}}

		rec := RecommendSleep(&p, &c, plan)
		assert.GreaterOrEqual(t, rec.Hours, BaseSleepHours, "trial %d", trial)
		assert.LessOrEqual(t, rec.Hours, MaxSleepHours, "trial %d", trial)
		assert.NotEmpty(t, rec.Reason, "trial %d", trial)
		if p.SleepProfile.UsualWakeup != "" {
			require.NotNil(t, rec.BedtimeWindow, "trial %d", trial)
			start, err := domain.ParseClock(rec.BedtimeWindow.Start)
			require.NoError(t, err)
			end, err := domain.ParseClock(rec.BedtimeWindow.End)
			require.NoError(t, err)
			assert.Equal(t, (start+60)%1440, end, "trial %d", trial)
		}
	}
}
