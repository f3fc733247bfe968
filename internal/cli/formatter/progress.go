package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBudgetBar renders spend against budget like [████░░░░] 45%. The bar
// turns yellow past 80% and red once the budget is exceeded, where it stays
// full and the percentage keeps counting.
func RenderBudgetBar(spent, budget float64, width int) string {
	if width < 2 {
		width = 2
	}
	var pct float64
	if budget > 0 {
		pct = spent / budget
	}
	if pct < 0 {
		pct = 0
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct > 1:
		style = StyleRed
	case pct > 0.8:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
