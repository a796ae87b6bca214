package engine

import (
	"slices"
	"strings"

	"github.com/alexanderramin/antigravity/internal/domain"
)

// correctionCheck inspects the latest meal. Each check is independent; a meal
// may trigger several. focus is empty for checks not tied to a meal tag.
type correctionCheck struct {
	name  string
	match func(m *domain.MealLog, c *domain.DailyCheckIn) bool
	lines []string
	focus domain.MealTag
}

var correctionChecks = []correctionCheck{
	{
		name: "protein_sodium",
		match: func(m *domain.MealLog, _ *domain.DailyCheckIn) bool {
			return m.HasTag(domain.TagHighProtein) && m.HasTag(domain.TagHighSodium)
		},
		lines: []string{
			"Your last meal was high in sodium. Go low-sodium for the next one!",
			"Eat plenty of vegetables and drink lots of water.",
		},
		focus: domain.TagHighSodium,
	},
	{
		name: "carb_without_protein",
		match: func(m *domain.MealLog, _ *domain.DailyCheckIn) bool {
			return m.HasTag(domain.TagHighCarb) && !m.HasTag(domain.TagHighProtein)
		},
		lines: []string{
			"That meal was mostly carbs. Add some protein to the next one.",
			"Include fibre-rich vegetables as well.",
		},
		focus: domain.TagHighCarb,
	},
	{
		name:  "fat",
		match: func(m *domain.MealLog, _ *domain.DailyCheckIn) bool { return m.HasTag(domain.TagHighFat) },
		lines: []string{"That was a rich, oily meal. Keep the next one light and plain!"},
		focus: domain.TagHighFat,
	},
	{
		name:  "low_veggie",
		match: func(m *domain.MealLog, _ *domain.DailyCheckIn) bool { return m.HasTag(domain.TagLowVeggie) },
		lines: []string{"You were short on vegetables. Make sure the next meal has plenty."},
		focus: domain.TagLowVeggie,
	},
	{
		name:  "alcohol",
		match: func(m *domain.MealLog, _ *domain.DailyCheckIn) bool { return m.HasTag(domain.TagAlcohol) },
		lines: []string{"You had alcohol. Rehydrate well and keep your next meal light."},
		focus: domain.TagAlcohol,
	},
	{
		name:  "dessert",
		match: func(m *domain.MealLog, _ *domain.DailyCheckIn) bool { return m.HasTag(domain.TagDessert) },
		lines: []string{"You had dessert. Cut back on sugar at the next meal."},
		focus: domain.TagDessert,
	},
	{
		name:  "high_stress",
		match: func(_ *domain.MealLog, c *domain.DailyCheckIn) bool { return c.Stress == domain.StressHigh },
		lines: []string{"When stress is high, steady carbohydrates and omega-3 help."},
	},
}

// LatestMeal returns the most recently logged meal. Ties on LoggedAt go to
// the later slice element.
func LatestMeal(meals []domain.MealLog) *domain.MealLog {
	if len(meals) == 0 {
		return nil
	}
	latest := 0
	for i := 1; i < len(meals); i++ {
		if !meals[i].LoggedAt.Before(meals[latest].LoggedAt) {
			latest = i
		}
	}
	return &meals[latest]
}

// CorrectNextMeal returns nil when no meal was logged or nothing warrants advice.
func CorrectNextMeal(meals []domain.MealLog, _ *domain.UserProfile, c *domain.DailyCheckIn) *domain.NextMealCorrection {
	last := LatestMeal(meals)
	if last == nil {
		return nil
	}

	var lines []string
	var focus []domain.MealTag
	for _, chk := range correctionChecks {
		if !chk.match(last, c) {
			continue
		}
		lines = append(lines, chk.lines...)
		if chk.focus != "" && !slices.Contains(focus, chk.focus) {
			focus = append(focus, chk.focus)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return &domain.NextMealCorrection{
		Suggestion: lines[0],
		Reason:     strings.Join(lines[1:], " "),
		FocusTags:  focus,
	}
}
