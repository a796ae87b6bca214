package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/antigravity/internal/contract"
	"github.com/alexanderramin/antigravity/internal/domain"
)

const (
	reportBarWidth = 20
	// Light weeks still draw short bars instead of filling the width.
	reportMinScale = 4
)

func FormatWeeklyReport(r *contract.WeeklyReport) string {
	var b strings.Builder

	goal := Dim("no profile")
	if r.Goal != "" {
		goal = Bold(r.Goal.Label())
	}
	bmi := Dim("--")
	if r.BMI != nil {
		bmi = bmiStyle(r.BMI.Class)(fmt.Sprintf("%.1f (%s)", r.BMI.Value, r.BMI.Class))
	}
	b.WriteString(RenderFields(
		"meals", strconv.Itoa(r.TotalMeals),
		"streak", plural(r.Streak, "day"),
		"medications", strconv.Itoa(r.Medications),
		"goal", goal,
		"bmi", bmi,
	))

	b.WriteString("\n" + Header("Meals per day") + "\n")
	scale := max(r.MaxDailyMeals(), reportMinScale)
	for _, d := range r.Days {
		bar := Dim("·")
		if d.Meals > 0 {
			bar = strings.Repeat("█", max(1, d.Meals*reportBarWidth/scale))
			if d.Date == r.EndDate {
				bar = StyleGreen.Render(bar)
			}
		}
		fmt.Fprintf(&b, "  %-6s %s %d\n", weekdayOf(d.Date), bar, d.Meals)
	}

	b.WriteString("\n" + Header("Top tags") + "\n")
	if len(r.TopTags) == 0 {
		b.WriteString("  " + Dim("No tagged meals this week.") + "\n")
	} else {
		rows := make([][]string, 0, len(r.TopTags))
		for _, tc := range r.TopTags {
			rows = append(rows, []string{string(tc.Tag), strconv.Itoa(tc.Count)})
		}
		b.WriteString(RenderTable([]string{"TAG", "COUNT"}, rows))
	}

	title := "Week " + HumanDay(r.StartDate) + " to " + HumanDay(r.EndDate)
	return RenderBox(title, strings.TrimRight(b.String(), "\n"))
}

func bmiStyle(c domain.BMIClass) func(...string) string {
	switch c {
	case domain.BMINormal:
		return StyleGreen.Render
	case domain.BMIObese:
		return StyleRed.Render
	default:
		return StyleYellow.Render
	}
}

// weekdayOf renders a day key as "Sat 14".
func weekdayOf(day string) string {
	t, err := time.Parse(domain.DateLayout, day)
	if err != nil {
		return day
	}
	return t.Format("Mon 2")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
