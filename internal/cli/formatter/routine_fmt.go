package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/antigravity/internal/domain"
)

func FormatRoutineList(routines []domain.RoutineTemplate) string {
	if len(routines) == 0 {
		return Dim("No routines.") + "\n"
	}
	rows := make([][]string, 0, len(routines))
	for _, r := range routines {
		rows = append(rows, []string{
			Dim(r.ID),
			CategoryStyle(r.Category).Render(string(r.Category)),
			r.Goal.Label(),
			r.Level.Label(),
			Bold(r.Name),
			FormatMinutes(r.TotalDurationMin),
		})
	}
	return RenderTable([]string{"ID", "CAT", "GOAL", "LEVEL", "NAME", "TIME"}, rows)
}

// FormatRoutine renders one catalog routine with its phases and safety tags.
func FormatRoutine(r domain.RoutineTemplate) string {
	var b strings.Builder

	b.WriteString(CategoryBadge(r.Category) + "\n")
	if r.NameKo != "" {
		b.WriteString(Dim(r.NameKo) + "\n")
	}
	if r.DescriptionKo != "" {
		b.WriteString(r.DescriptionKo + "\n")
	}
	b.WriteString("\n")
	b.WriteString(RenderFields(
		"id", r.ID,
		"goal", r.Goal.Label(),
		"level", r.Level.Label(),
		"duration", FormatMinutes(r.TotalDurationMin),
		"intensity", IntensityBadge(r.Intensity),
		"avoid with", JoinTags(r.ContraindicationTags),
		"medication", JoinTags(r.MedicationWarnings),
	))

	writePhase(&b, "Warm-up", r.Warmup)
	writePhase(&b, "Main", r.Main)
	writePhase(&b, "Cool-down", r.Cooldown)

	return RenderBox(r.Name, strings.TrimRight(b.String(), "\n"))
}

func writePhase(b *strings.Builder, title string, sets []domain.ExerciseSet) {
	if len(sets) == 0 {
		return
	}
	b.WriteString("\n" + Header(title) + "\n")
	for _, s := range sets {
		line := s.NameKo
		if d := describeSet(s); d != "" {
			line += "  " + StyleBlue.Render(d)
		}
		if s.NoteKo != "" {
			line += "  " + Dim(s.NoteKo)
		}
		b.WriteString("  " + line + "\n")
	}
}

// describeSet renders "3×12", "12 reps" or "1m 30s".
func describeSet(s domain.ExerciseSet) string {
	switch {
	case s.Sets > 0 && s.Reps > 0:
		return fmt.Sprintf("%d×%d", s.Sets, s.Reps)
	case s.Reps > 0:
		return strconv.Itoa(s.Reps) + " reps"
	case s.DurationSec > 0:
		return formatSeconds(s.DurationSec)
	default:
		return ""
	}
}

func formatSeconds(sec int) string {
	m, s := sec/60, sec%60
	switch {
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
