package contract

import "github.com/alexanderramin/antigravity/internal/domain"

// ReportDays is the length of the weekly report window.
const ReportDays = 7

// WeeklyReport summarizes the ReportDays days ending on EndDate.
type WeeklyReport struct {
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	Days        []DayMeals  `json:"days"` // oldest first
	TotalMeals  int         `json:"total_meals"`
	TopTags     []TagCount  `json:"top_tags"` // most logged first
	Streak      int         `json:"streak"`   // consecutive days with a meal, counted back from EndDate
	Medications int         `json:"medications"`
	Goal        domain.Goal `json:"goal,omitempty"`
	BMI         *BMIReading `json:"bmi,omitempty"`
}

type DayMeals struct {
	Date  string `json:"date"`
	Meals int    `json:"meals"`
}

type TagCount struct {
	Tag   domain.MealTag `json:"tag"`
	Count int            `json:"count"`
}

type BMIReading struct {
	Value float64         `json:"value"`
	Class domain.BMIClass `json:"class"`
}

// MaxDailyMeals is the busiest day in the window, at least 1.
func (r *WeeklyReport) MaxDailyMeals() int {
	top := 1
	for _, d := range r.Days {
		top = max(top, d.Meals)
	}
	return top
}
