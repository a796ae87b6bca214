package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/antigravity/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle gives each exercise category its own accent.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryPH:
		return StyleBlue
	case domain.CategorySO:
		return StyleYellow
	case domain.CategoryMB:
		return StylePurple
	case domain.CategoryTF:
		return StyleGreen
	default:
		return StyleDim
	}
}

// CategoryBadge renders "● SO Sunlit Outdoor" in the category's accent.
func CategoryBadge(c domain.Category) string {
	return CategoryStyle(c).Render(fmt.Sprintf("● %s %s", c, c.Label()))
}

func IntensityBadge(i domain.Intensity) string {
	switch i {
	case domain.IntensityHigh:
		return StyleRed.Render("▲ high")
	case domain.IntensityModerate:
		return StyleYellow.Render("■ moderate")
	case domain.IntensityLow:
		return StyleGreen.Render("▼ low")
	default:
		return StyleDim.Render(string(i))
	}
}

// AllowedIndicator marks whether the chosen routine cleared the safety gate.
func AllowedIndicator(allowed bool) string {
	if allowed {
		return StyleGreen.Render("✔ cleared")
	}
	return StyleRed.Render("✖ not recommended")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
