package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/antigravity/internal/domain"
)

const (
	BaseSleepHours = 7.5
	MaxSleepHours  = 9.0
	sleepStep      = 0.5
)

const defaultSleepReason = "Enough sleep is the foundation of good health."

// RecommendSleep adds half an hour per factor on top of the baseline, capped.
// The bedtime window needs a known wake time.
func RecommendSleep(profile *domain.UserProfile, c *domain.DailyCheckIn, exercise *domain.ExercisePlan) domain.SleepRecommendation {
	hours := BaseSleepHours
	var reasons []string

	if c.Stress == domain.StressHigh {
		hours += sleepStep
		reasons = append(reasons, "Your stress is high, so you need extra rest.")
	}
	if c.SleepQuality == domain.SleepPoor {
		hours += sleepStep
		reasons = append(reasons, "You slept poorly last night. Try to turn in early tonight.")
	}
	if profile.Goal == domain.GoalMuscleGain || exercise.Routine.Intensity == domain.IntensityHigh {
		hours += sleepStep
		reasons = append(reasons, "Sleep well so your muscles can recover from training.")
	}
	hours = math.Min(hours, MaxSleepHours)

	rec := domain.SleepRecommendation{Hours: hours}
	if wake := profile.SleepProfile.UsualWakeup; wake != "" {
		if wakeMin, err := domain.ParseClock(wake); err == nil {
			start := wakeMin - int(math.Round(hours*60))
			rec.BedtimeWindow = &domain.BedtimeWindow{
				Start: domain.FormatClock(start),
				End:   domain.FormatClock(start + 60),
			}
			reasons = append(reasons, fmt.Sprintf("To wake at %s, go to bed between %s and %s.",
				domain.FormatClock(wakeMin), rec.BedtimeWindow.Start, rec.BedtimeWindow.End))
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, defaultSleepReason)
	}
	rec.Reason = strings.Join(reasons, " ")
	return rec
}
