package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDay renders a YYYY-MM-DD key as "Sat, Mar 14", or the raw key when
// it does not parse.
func HumanDay(day string) string {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return day
	}
	return t.Format("Mon, Jan 2")
}

// ClockOf renders the local wall-clock time of t as HH:MM.
func ClockOf(t time.Time) string {
	return t.Local().Format("15:04")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatHours renders 7.5 as "7.5h" and 8 as "8h".
func FormatHours(h float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", h), ".0") + "h"
}

// JoinTags renders string-typed tags comma separated, or a dim "--" when empty.
func JoinTags[T ~string](tags []T) string {
	if len(tags) == 0 {
		return Dim("--")
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func bullets(b *strings.Builder, style lipgloss.Style, marker string, lines []string) {
	for _, l := range lines {
		b.WriteString(style.Render(marker) + " " + l + "\n")
	}
}
