package domain

import "time"

// ExercisePlan is the routine chosen for the day with every safety finding attached.
type ExercisePlan struct {
	Category       Category        `json:"category"`
	CategoryReason string          `json:"category_reason"`
	Routine        RoutineTemplate `json:"routine"`
	SafetyNotes    []string        `json:"safety_notes"`
	Adjustments    []string        `json:"adjustments"`
	Allowed        bool            `json:"allowed"`
}

type MealPlanItem struct {
	MealType   MealType  `json:"meal_type"`
	Suggestion string    `json:"suggestion"`
	Reason     string    `json:"reason"`
	Toppings   []Topping `json:"toppings"`
}

// NextMealCorrection compensates for the most recently logged meal.
type NextMealCorrection struct {
	Suggestion string    `json:"suggestion"`
	Reason     string    `json:"reason"`
	FocusTags  []MealTag `json:"focus_tags"`
}

type BedtimeWindow struct {
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`   // HH:MM
}

type SleepRecommendation struct {
	Hours         float64        `json:"hours"`
	BedtimeWindow *BedtimeWindow `json:"bedtime_window,omitempty"`
	Reason        string         `json:"reason"`
}

// PlanOfDay is the snapshot produced once per date. It is replaced as a whole,
// never patched; InvalidatedAt marks a snapshot whose inputs changed.
type PlanOfDay struct {
	ID                  string              `json:"id"`
	Date                string              `json:"date"`
	CheckInID           string              `json:"check_in_id"`
	ExercisePlan        ExercisePlan        `json:"exercise_plan"`
	MealPlan            [3]MealPlanItem     `json:"meal_plan"`
	NextMealCorrection  *NextMealCorrection `json:"next_meal_correction,omitempty"`
	SleepRecommendation SleepRecommendation `json:"sleep_recommendation"`
	GeneratedAt         time.Time           `json:"generated_at"`
	InvalidatedAt       *time.Time          `json:"invalidated_at,omitempty"`
}

func (p *PlanOfDay) IsValid() bool {
	return p.InvalidatedAt == nil
}

// CoachFacts are the only plan facts a text-generation collaborator may see.
type CoachFacts struct {
	Goal                Goal        `json:"goal"`
	Mood                Mood        `json:"mood"`
	Stress              StressLevel `json:"stress"`
	Category            Category    `json:"category"`
	RoutineName         string      `json:"routine_name"`
	FirstMealSuggestion string      `json:"first_meal_suggestion"`
	SleepHours          float64     `json:"sleep_hours"`
}

// CoachFacts extracts the coach-text facts. Profile and check-in supply the
// fields the plan does not carry itself.
func (p *PlanOfDay) CoachFacts(profile *UserProfile, checkIn *DailyCheckIn) CoachFacts {
	return CoachFacts{
		Goal:                profile.Goal,
		Mood:                checkIn.Mood,
		Stress:              checkIn.Stress,
		Category:            p.ExercisePlan.Category,
		RoutineName:         p.ExercisePlan.Routine.Name,
		FirstMealSuggestion: p.MealPlan[0].Suggestion,
		SleepHours:          p.SleepRecommendation.Hours,
	}
}
