package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{1234.5, "₹1,234.50"},
		{1234567, "₹1,234,567"},
		{0.999, "₹1"},
		{-50, "-₹50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in), "Money(%v)", tt.in)
	}
	assert.Equal(t, "₹8,229", MoneyInt(8229))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Mar 1, 2025", HumanTimestamp(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), now))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestRenderTableAligned_RightAlignsColumns(t *testing.T) {
	out := stripANSI(RenderTableAligned(
		[]string{"A", "N"},
		[][]string{{"x", "5"}, {"yy", "10"}},
		[]int{1},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "x    5", lines[2])
	assert.Equal(t, "yy  10", lines[3])
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"a"}}))
}

func TestRenderBudgetBar(t *testing.T) {
	half := stripANSI(RenderBudgetBar(50, 100, 10))
	assert.Contains(t, half, "[█████░░░░░]")
	assert.Contains(t, half, " 50%")

	over := stripANSI(RenderBudgetBar(150, 100, 10))
	assert.Contains(t, over, "[██████████]")
	assert.Contains(t, over, "150%")

	assert.Contains(t, stripANSI(RenderBudgetBar(10, 0, 4)), "  0%")
}
