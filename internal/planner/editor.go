package planner

import (
	"github.com/alexanderramin/itinera/internal/domain"
)

// EditSkipCode explains why an edit left the day unchanged.
type EditSkipCode string

const (
	SkipNone                 EditSkipCode = ""
	SkipActivityNotInDay     EditSkipCode = "ACTIVITY_NOT_IN_DAY"
	SkipUnavailableInCatalog EditSkipCode = "UNAVAILABLE_IN_CATALOG"
	SkipNothingToRemove      EditSkipCode = "NOTHING_TO_REMOVE"
)

// EditOutcome reports what an edit did. An unresolvable name is not an
// error: Applied is false and Skip says why. Dropped counts activities that
// no longer fit the day after rescheduling.
type EditOutcome struct {
	Applied bool
	Skip    EditSkipCode
	Dropped int
}

// Swap replaces the first activity named outName on day dayIdx with the
// catalog entry named inName, keeping its position, and reschedules the day.
// inName must not already be on that day.
func Swap(it *domain.Itinerary, dayIdx int, outName, inName string, catalog []domain.PointOfInterest) (EditOutcome, error) {
	day, err := it.Day(dayIdx)
	if err != nil {
		return EditOutcome{}, err
	}
	pos := -1
	for i, a := range day.Activities {
		if a.Name == outName {
			pos = i
			break
		}
	}
	if pos < 0 {
		return EditOutcome{Skip: SkipActivityNotInDay}, nil
	}
	repl, ok := availableForDay(*day, inName, catalog)
	if !ok {
		return EditOutcome{Skip: SkipUnavailableInCatalog}, nil
	}

	day.Activities[pos] = domain.ScheduledActivity{PointOfInterest: repl}
	return EditOutcome{Applied: true, Dropped: RescheduleDay(day, it.Hours)}, nil
}

// Add appends the catalog entry named name to day dayIdx and reschedules it.
func Add(it *domain.Itinerary, dayIdx int, name string, catalog []domain.PointOfInterest) (EditOutcome, error) {
	day, err := it.Day(dayIdx)
	if err != nil {
		return EditOutcome{}, err
	}
	poi, ok := availableForDay(*day, name, catalog)
	if !ok {
		return EditOutcome{Skip: SkipUnavailableInCatalog}, nil
	}

	day.Activities = append(day.Activities, domain.ScheduledActivity{PointOfInterest: poi})
	return EditOutcome{Applied: true, Dropped: RescheduleDay(day, it.Hours)}, nil
}

// Remove drops the activities at the given zero-based positions of day dayIdx
// and reschedules the rest. Positions outside the day are ignored.
func Remove(it *domain.Itinerary, dayIdx int, positions []int) (EditOutcome, error) {
	day, err := it.Day(dayIdx)
	if err != nil {
		return EditOutcome{}, err
	}
	drop := make(map[int]bool, len(positions))
	for _, p := range positions {
		drop[p] = true
	}
	return retain(it, day, func(i int, _ domain.ScheduledActivity) bool { return !drop[i] }), nil
}

// RemoveNamed drops every activity of day dayIdx whose name is in names and
// reschedules the rest.
func RemoveNamed(it *domain.Itinerary, dayIdx int, names []string) (EditOutcome, error) {
	day, err := it.Day(dayIdx)
	if err != nil {
		return EditOutcome{}, err
	}
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	return retain(it, day, func(_ int, a domain.ScheduledActivity) bool { return !drop[a.Name] }), nil
}

func retain(it *domain.Itinerary, day *domain.DayPlan, keep func(int, domain.ScheduledActivity) bool) EditOutcome {
	kept := make([]domain.ScheduledActivity, 0, len(day.Activities))
	for i, a := range day.Activities {
		if keep(i, a) {
			kept = append(kept, a)
		}
	}
	removed := len(day.Activities) - len(kept)
	day.Activities = kept
	out := EditOutcome{Applied: removed > 0, Dropped: RescheduleDay(day, it.Hours)}
	if !out.Applied {
		out.Skip = SkipNothingToRemove
	}
	return out
}

// AvailableForDay lists catalog entries not already on day, in catalog order.
func AvailableForDay(day domain.DayPlan, catalog []domain.PointOfInterest) []domain.PointOfInterest {
	var out []domain.PointOfInterest
	for _, p := range catalog {
		if !day.HasActivity(p.Name) {
			out = append(out, p)
		}
	}
	return out
}

func availableForDay(day domain.DayPlan, name string, catalog []domain.PointOfInterest) (domain.PointOfInterest, bool) {
	if day.HasActivity(name) {
		return domain.PointOfInterest{}, false
	}
	i := domain.IndexOfPOI(catalog, name)
	if i < 0 {
		return domain.PointOfInterest{}, false
	}
	return catalog[i], true
}
