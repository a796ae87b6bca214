package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/antigravity/internal/domain"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestHumanDay(t *testing.T) {
	assert.Equal(t, "Sat, Mar 14", HumanDay("2026-03-14"))
	assert.Equal(t, "someday", HumanDay("someday"))
}

func TestClockOf(t *testing.T) {
	at := time.Date(2026, 3, 14, 8, 5, 0, 0, time.Local)
	assert.Equal(t, "08:05", ClockOf(at))
}

func TestTruncID(t *testing.T) {
	id := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	got := TruncID(id)
	assert.Contains(t, got, "a1b2c3d4")
	assert.NotContains(t, got, "e5f6")

	assert.Contains(t, TruncID("short"), "short")
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h"},
		{150, "2h 30m"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.input))
		})
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "7.5h", FormatHours(7.5))
	assert.Equal(t, "8h", FormatHours(8))
	assert.Equal(t, "9h", FormatHours(9.0))
}

func TestJoinTags(t *testing.T) {
	assert.Equal(t, "high_carb, alcohol", JoinTags([]domain.MealTag{domain.TagHighCarb, domain.TagAlcohol}))
	assert.Contains(t, JoinTags[domain.MealTag](nil), "--")
}

func TestCategoryBadge(t *testing.T) {
	for c, info := range domain.CategoryLabels {
		got := stripANSI(CategoryBadge(c))
		assert.Contains(t, got, string(c))
		assert.Contains(t, got, info.Label)
	}
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B"},
		[][]string{{Bold("long cell"), "x"}, {"s", "y"}},
	))
	lines := regexp.MustCompile("\n").Split(out, -1)
	assert.Equal(t, "A          B", lines[0])
	assert.Equal(t, "long cell  x", lines[2])
	assert.Equal(t, "s          y", lines[3])
}

func TestRenderFields(t *testing.T) {
	out := stripANSI(RenderFields("goal", "Diet", "conditions", "none"))
	assert.Equal(t, "goal        Diet\nconditions  none\n", out)
}
