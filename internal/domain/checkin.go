package domain

import "time"

// EnvironmentReport is the user's own perception of today's conditions.
type EnvironmentReport struct {
	PerceivedWeather PerceivedWeather
	TemperatureFeel  TemperatureFeel
	AirQuality       AirQuality
	ActivityLocation ActivityLocation
	RegionCode       string
}

// DailyCheckIn is the once-per-day self report. Digestion and SleepQuality
// are optional and left empty when not reported.
type DailyCheckIn struct {
	ID           string
	Date         string // YYYY-MM-DD
	Mood         Mood
	Stress       StressLevel
	Digestion    Digestion
	SleepQuality SleepQuality
	Environment  EnvironmentReport
	CreatedAt    time.Time
}

func (c *DailyCheckIn) Validate() error {
	if err := validateDate("date", c.Date); err != nil {
		return err
	}
	if !c.Mood.Valid() {
		return enumError("mood", string(c.Mood))
	}
	if !c.Stress.Valid() {
		return enumError("stress", string(c.Stress))
	}
	if c.Digestion != "" && !c.Digestion.Valid() {
		return enumError("digestion", string(c.Digestion))
	}
	if c.SleepQuality != "" && !c.SleepQuality.Valid() {
		return enumError("sleep_quality", string(c.SleepQuality))
	}
	return c.Environment.Validate()
}

func (e *EnvironmentReport) Validate() error {
	if !e.PerceivedWeather.Valid() {
		return enumError("weather", string(e.PerceivedWeather))
	}
	if !e.TemperatureFeel.Valid() {
		return enumError("temperature", string(e.TemperatureFeel))
	}
	if !e.AirQuality.Valid() {
		return enumError("air_quality", string(e.AirQuality))
	}
	if !e.ActivityLocation.Valid() {
		return enumError("location", string(e.ActivityLocation))
	}
	return nil
}
