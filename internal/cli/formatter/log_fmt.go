package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/antigravity/internal/catalog"
	"github.com/alexanderramin/antigravity/internal/domain"
)

func FormatMeals(date string, meals []*domain.MealLog) string {
	if len(meals) == 0 {
		return Dim("No meals logged for "+HumanDay(date)+".") + "\n"
	}
	rows := make([][]string, 0, len(meals))
	for _, m := range meals {
		kcal := Dim("--")
		if m.EstimatedCalories != nil {
			kcal = strconv.Itoa(*m.EstimatedCalories)
		}
		rows = append(rows, []string{
			ClockOf(m.LoggedAt),
			Bold(mealLabel(m.MealType)),
			JoinTags(m.Tags),
			string(m.Portion),
			kcal,
			TruncID(m.ID),
		})
	}
	return Header("Meals on "+HumanDay(date)) + "\n" +
		RenderTable([]string{"TIME", "MEAL", "TAGS", "PORTION", "KCAL", "ID"}, rows)
}

func FormatMedications(meds []*domain.MedicationEntry) string {
	if len(meds) == 0 {
		return Dim("No medications registered.") + "\n"
	}
	rows := make([][]string, 0, len(meds))
	for _, m := range meds {
		name := Bold(m.Name)
		if m.Dosage != "" {
			name += " " + Dim(m.Dosage)
		}
		rows = append(rows, []string{name, medTags(m.Tags), string(m.AddedVia), TruncID(m.ID)})
	}
	return RenderTable([]string{"NAME", "SAFETY TAGS", "VIA", "ID"}, rows)
}

// FormatDrugs lists reference-table search hits.
func FormatDrugs(drugs []catalog.Drug) string {
	if len(drugs) == 0 {
		return Dim("No matching drugs.") + "\n"
	}
	rows := make([][]string, 0, len(drugs))
	for _, d := range drugs {
		rows = append(rows, []string{Bold(d.Name), d.NameKo, Dim(d.ClassKo), medTags(d.Tags)})
	}
	return RenderTable([]string{"NAME", "KOREAN", "CLASS", "SAFETY TAGS"}, rows)
}

func medTags(tags []domain.MedicationTag) string {
	if len(tags) == 0 {
		return Dim("none")
	}
	return StyleYellow.Render(JoinTags(tags))
}

func FormatProfile(p *domain.UserProfile) string {
	diseases := Dim("none")
	if len(p.Diseases) > 0 {
		diseases = JoinTags(p.Diseases)
	}
	sleep := domain.CoalesceStr(p.SleepProfile.UsualBedtime, "?") + " → " +
		domain.CoalesceStr(p.SleepProfile.UsualWakeup, "?")
	if p.SleepProfile.IsShiftWorker {
		sleep += " " + StyleYellow.Render("(shift work)")
	}

	var b strings.Builder
	b.WriteString(RenderFields(
		"goal", Bold(p.Goal.Label()),
		"conditions", diseases,
		"sleep", sleep,
		"height", strconv.FormatFloat(p.InBody.HeightCm, 'f', -1, 64)+" cm",
		"weight", strconv.FormatFloat(p.InBody.WeightKg, 'f', -1, 64)+" kg",
	))
	return RenderBox("Profile", strings.TrimRight(b.String(), "\n"))
}

func FormatCheckIn(c *domain.DailyCheckIn) string {
	env := c.Environment
	region := env.RegionCode
	if region == "" {
		region = Dim("--")
	}
	return RenderBox("Check-in for "+HumanDay(c.Date), strings.TrimRight(RenderFields(
		"mood", string(c.Mood),
		"stress", string(c.Stress),
		"digestion", domain.CoalesceStr(string(c.Digestion), Dim("not reported")),
		"sleep", domain.CoalesceStr(string(c.SleepQuality), Dim("not reported")),
		"weather", string(env.PerceivedWeather)+", "+string(env.TemperatureFeel),
		"air", string(env.AirQuality),
		"location", string(env.ActivityLocation),
		"region", region,
	), "\n"))
}
