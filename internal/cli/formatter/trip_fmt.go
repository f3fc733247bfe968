package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatTripList renders saved trips, newest first, inside a bordered box.
func FormatTripList(trips []*domain.Trip, now time.Time) string {
	if len(trips) == 0 {
		return RenderBox("Trips", Dim("No trips yet. Run `itinera plan` to create one."))
	}
	headers := []string{"ID", "DESTINATION", "DATES", "DAYS", "VARIANTS", "BUDGET", "CREATED"}
	rows := make([][]string, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, []string{
			TruncID(t.ID),
			Bold(t.Destination),
			formatWindow(t.StartDate, t.EndDate),
			fmt.Sprintf("%d", t.DayCount()),
			fmt.Sprintf("%d/%d", t.Itineraries.Current+1, t.Itineraries.Len()),
			Money(t.Budget),
			Dim(HumanTimestamp(t.CreatedAt, now)),
		})
	}
	return RenderBox("Trips", RenderTableAligned(headers, rows, []int{3, 5}))
}

// FormatTrip renders a trip's inputs and the current variant day by day.
func FormatTrip(t *domain.Trip) string {
	var b strings.Builder
	b.WriteString(tripSummary(t))
	b.WriteString("\n")

	it := t.Itineraries.CurrentVariant()
	for i, day := range it.Days {
		b.WriteString("\n")
		b.WriteString(FormatDay(i, day))
	}

	if len(t.ChosenTravel) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Travel"))
		b.WriteString("\n")
		for _, mode := range orderedModes(t.ChosenTravel) {
			o := t.ChosenTravel[mode]
			b.WriteString(fmt.Sprintf("%s  %s  %s→%s  %s\n",
				ModeBadge(mode), Bold(o.Provider), o.Depart, o.Arrive, Money(o.Price)))
		}
	}
	return RenderBox(fmt.Sprintf("%s · %s", t.Destination, t.ShortID()), strings.TrimRight(b.String(), "\n"))
}

func tripSummary(t *domain.Trip) string {
	label := func(s string) string { return StyleDim.Render(fmt.Sprintf("%-9s", s)) }
	origin := t.Origin
	if origin == "" {
		origin = "--"
	}
	themes := Dim("any")
	if len(t.Themes) > 0 {
		badges := make([]string, len(t.Themes))
		for i, th := range t.Themes {
			badges[i] = ThemeBadge(th)
		}
		themes = strings.Join(badges, " ")
	}

	lines := []string{
		label("FROM") + StyleFg.Render(origin),
		label("DATES") + StyleFg.Render(formatWindow(t.StartDate, t.EndDate)) + Dim(fmt.Sprintf("  (%d days)", t.DayCount())),
		label("PARTY") + StyleFg.Render(fmt.Sprintf("%d", t.PartySize)),
		label("BUDGET") + StyleFg.Render(Money(t.Budget)),
		label("THEMES") + themes,
		label("HOURS") + StyleFg.Render(fmt.Sprintf("%02d:00–%02d:00", t.Hours.StartHour, t.Hours.EndHour)),
		label("VARIANT") + StyleFg.Render(fmt.Sprintf("%d of %d", t.Itineraries.Current+1, t.Itineraries.Len())) +
			Dim(fmt.Sprintf("  seed %d · %s", t.Itineraries.CurrentVariant().Seed, t.Sequence)),
	}
	return strings.Join(lines, "\n")
}

// FormatDay renders one day of an itinerary. dayIdx is zero-based.
func FormatDay(dayIdx int, day domain.DayPlan) string {
	title := fmt.Sprintf("Day %d · %s", dayIdx+1, DayLabel(day.Date))
	if len(day.Activities) == 0 {
		return Header(title) + "\n" + Dim("Free day, nothing fits the budget.") + "\n"
	}

	headers := []string{"TIME", "ACTIVITY", "THEME", "DURATION", "COST", "RATING"}
	rows := make([][]string, 0, len(day.Activities))
	for _, a := range day.Activities {
		rows = append(rows, []string{
			Dim(a.StartTime + "–" + a.EndTime),
			Bold(a.Name),
			ThemeBadge(a.Theme),
			FormatMinutes(a.EffectiveDurationMin()),
			Money(a.EffectiveCost()),
			RatingBadge(a.EffectiveRating()),
		})
	}
	table := RenderTableAligned(headers, rows, []int{3, 4})
	footer := lipgloss.JoinHorizontal(lipgloss.Top, Dim("Day subtotal "), StyleFg.Render(Money(day.Subtotal())))
	return Header(title) + "\n" + table + footer + "\n"
}

func formatWindow(start, end time.Time) string {
	if start.Equal(end) {
		return start.Format("02 Jan 2006")
	}
	if start.Year() == end.Year() {
		return start.Format("02 Jan") + " – " + end.Format("02 Jan 2006")
	}
	return start.Format("02 Jan 2006") + " – " + end.Format("02 Jan 2006")
}

var modeOrder = []domain.TravelMode{domain.ModeFlight, domain.ModeTrain, domain.ModeBus, domain.ModeCab}

func orderedModes[V any](m map[domain.TravelMode]V) []domain.TravelMode {
	out := make([]domain.TravelMode, 0, len(m))
	for _, mode := range modeOrder {
		if _, ok := m[mode]; ok {
			out = append(out, mode)
		}
	}
	return out
}
