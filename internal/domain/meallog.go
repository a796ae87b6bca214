package domain

import (
	"slices"
	"time"
)

type PortionSize string

const (
	PortionSmall  PortionSize = "small"
	PortionMedium PortionSize = "medium"
	PortionLarge  PortionSize = "large"
)

// MealLog is one logged meal. LoggedAt orders meals within a day.
type MealLog struct {
	ID                string
	Date              string // YYYY-MM-DD
	MealType          MealType
	Tags              []MealTag
	Portion           PortionSize
	EstimatedCalories *int
	Notes             string
	LoggedAt          time.Time
}

func (m *MealLog) HasTag(t MealTag) bool {
	return slices.Contains(m.Tags, t)
}

func (m *MealLog) Validate() error {
	if err := validateDate("date", m.Date); err != nil {
		return err
	}
	if !m.MealType.Valid() {
		return enumError("meal_type", string(m.MealType))
	}
	for _, t := range m.Tags {
		if !t.Valid() {
			return enumError("meal_tag", string(t))
		}
	}
	switch m.Portion {
	case "", PortionSmall, PortionMedium, PortionLarge:
	default:
		return enumError("portion", string(m.Portion))
	}
	if m.EstimatedCalories != nil && *m.EstimatedCalories < 0 {
		return valueError("estimated_calories", "", "must not be negative")
	}
	return nil
}
