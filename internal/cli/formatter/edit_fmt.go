package formatter

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/planner"
)

// FormatEditOutcome describes what an edit did to day dayIdx.
func FormatEditOutcome(dayIdx int, out planner.EditOutcome) string {
	if !out.Applied {
		return StyleYellow.Render("! ") + fmt.Sprintf("Day %d unchanged: %s", dayIdx+1, skipReason(out.Skip))
	}
	msg := StyleGreen.Render("✔ ") + fmt.Sprintf("Day %d updated and rescheduled", dayIdx+1)
	if out.Dropped > 0 {
		msg += "\n" + StyleYellow.Render(fmt.Sprintf("  %d activity(ies) no longer fit the day and were dropped", out.Dropped))
	}
	return msg
}

func skipReason(code planner.EditSkipCode) string {
	switch code {
	case planner.SkipActivityNotInDay:
		return "that activity is not on this day"
	case planner.SkipUnavailableInCatalog:
		return "not in the catalog or already on this day"
	case planner.SkipNothingToRemove:
		return "nothing matched to remove"
	default:
		return string(code)
	}
}
