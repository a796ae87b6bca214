package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the day-key format used for check-ins, meal logs and plans.
const DateLayout = "2006-01-02"

// ClockLayout is the HH:MM format used for bedtimes and wake times.
const ClockLayout = "15:04"

var (
	// ErrInvalidEnum indicates a value outside its enumerated set.
	ErrInvalidEnum = errors.New("invalid enumerated value")

	// ErrInvalidValue indicates a malformed non-enum field (date, clock time, metric).
	ErrInvalidValue = errors.New("invalid value")
)

// ValidationError reports the offending field of an input record.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func enumError(field, value string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Err: ErrInvalidEnum}
}

func valueError(field, value, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason, Err: ErrInvalidValue}
}

func parseEnum[T ~string](field, raw string, valid map[T]bool) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(raw)))
	if !valid[v] {
		return "", enumError(field, raw)
	}
	return v, nil
}

func ParseGoal(s string) (Goal, error) {
	return parseEnum("goal", s, ValidGoals)
}

func ParseDisease(s string) (Disease, error) {
	return parseEnum("disease", s, ValidDiseases)
}

func ParseMood(s string) (Mood, error) {
	return parseEnum("mood", s, ValidMoods)
}

func ParseStress(s string) (StressLevel, error) {
	return parseEnum("stress", s, ValidStressLevels)
}

func ParseDigestion(s string) (Digestion, error) {
	return parseEnum("digestion", s, ValidDigestion)
}

func ParseSleepQuality(s string) (SleepQuality, error) {
	return parseEnum("sleep_quality", s, ValidSleepQualities)
}

func ParseWeather(s string) (PerceivedWeather, error) {
	return parseEnum("weather", s, ValidWeathers)
}

func ParseTemperature(s string) (TemperatureFeel, error) {
	return parseEnum("temperature", s, ValidTemperatures)
}

func ParseAirQuality(s string) (AirQuality, error) {
	return parseEnum("air_quality", s, ValidAirQualities)
}

func ParseLocation(s string) (ActivityLocation, error) {
	return parseEnum("location", s, ValidLocations)
}

func ParseMealType(s string) (MealType, error) {
	return parseEnum("meal_type", s, ValidMealTypes)
}

func ParseMealTag(s string) (MealTag, error) {
	return parseEnum("meal_tag", s, ValidMealTags)
}

// ParseCategory accepts the two-letter code in either case.
func ParseCategory(s string) (Category, error) {
	v := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", enumError("category", s)
	}
	return v, nil
}

// ParseMedicationTag accepts the canonical upper-case tag in either case.
func ParseMedicationTag(s string) (MedicationTag, error) {
	v := MedicationTag(strings.ToUpper(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", enumError("medication_tag", s)
	}
	return v, nil
}

// ParseClock parses an "HH:MM" string into minutes after midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, valueError("clock", s, "expected HH:MM")
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes after midnight as "HH:MM", wrapping past 24h.
func FormatClock(minutes int) string {
	m := ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func validateDate(field, s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return valueError(field, s, "expected YYYY-MM-DD")
	}
	return nil
}
