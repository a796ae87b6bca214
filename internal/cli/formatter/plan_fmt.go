package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/antigravity/internal/contract"
	"github.com/alexanderramin/antigravity/internal/domain"
)

// FormatPlan renders the plan of the day as a boxed dashboard.
func FormatPlan(resp *contract.PlanResponse) string {
	p := resp.Plan
	var b strings.Builder

	if resp.Reused {
		b.WriteString(Dim("Showing the stored plan. Use --regenerate to rebuild it.") + "\n\n")
	}

	writeExercise(&b, &p.ExercisePlan)
	b.WriteString("\n")
	writeMeals(&b, p.MealPlan, p.NextMealCorrection)
	b.WriteString("\n")
	writeSleep(&b, &p.SleepRecommendation)

	return RenderBox("Plan for "+HumanDay(p.Date), strings.TrimRight(b.String(), "\n"))
}

func writeExercise(b *strings.Builder, ex *domain.ExercisePlan) {
	b.WriteString(Header("Exercise") + "\n")
	b.WriteString(CategoryBadge(ex.Category) + "\n")
	b.WriteString(Dim(ex.CategoryReason) + "\n\n")

	r := ex.Routine
	b.WriteString(Bold(r.Name))
	if r.NameKo != "" {
		b.WriteString(" " + Dim(r.NameKo))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s · %s · %s\n", FormatMinutes(r.TotalDurationMin), IntensityBadge(r.Intensity), AllowedIndicator(ex.Allowed)))

	if len(ex.SafetyNotes) > 0 || len(ex.Adjustments) > 0 {
		b.WriteString("\n")
	}
	bullets(b, StyleYellow, "!", ex.SafetyNotes)
	bullets(b, StyleBlue, "→", ex.Adjustments)
}

func writeMeals(b *strings.Builder, meals [3]domain.MealPlanItem, correction *domain.NextMealCorrection) {
	b.WriteString(Header("Meals") + "\n")

	rows := make([][]string, 0, len(meals))
	for _, m := range meals {
		rows = append(rows, []string{Bold(mealLabel(m.MealType)), m.Suggestion, toppingList(m.Toppings)})
	}
	b.WriteString(RenderTable([]string{"MEAL", "SUGGESTION", "TOPPINGS"}, rows))

	for _, m := range meals {
		if m.Reason != "" {
			b.WriteString(Dim(fmt.Sprintf("%s: %s", mealLabel(m.MealType), m.Reason)) + "\n")
		}
	}

	if correction != nil {
		b.WriteString("\n" + StyleGreen.Render("Next meal: ") + correction.Suggestion + "\n")
		b.WriteString(Dim(correction.Reason) + "\n")
	}
}

func writeSleep(b *strings.Builder, s *domain.SleepRecommendation) {
	b.WriteString(Header("Sleep") + "\n")
	line := Bold(FormatHours(s.Hours))
	if s.BedtimeWindow != nil {
		line += fmt.Sprintf("  bed between %s and %s", s.BedtimeWindow.Start, s.BedtimeWindow.End)
	}
	b.WriteString(line + "\n")
	b.WriteString(Dim(s.Reason) + "\n")
}

func mealLabel(t domain.MealType) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func toppingList(ts []domain.Topping) string {
	if len(ts) == 0 {
		return Dim("--")
	}
	labels := make([]string, len(ts))
	for i, t := range ts {
		labels[i] = domain.ToppingLabels[t]
		if labels[i] == "" {
			labels[i] = string(t)
		}
	}
	return StylePurple.Render(strings.Join(labels, ", "))
}
