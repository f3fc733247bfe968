package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/app"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/planner"
	"github.com/alexanderramin/itinera/internal/repository"
)

func FormatCityList(cities []repository.CitySummary) string {
	if len(cities) == 0 {
		return RenderBox("Destinations", Dim("Catalog is empty. Run `itinera catalog import <file>`."))
	}
	headers := []string{"CITY", "POIS", "CENTER"}
	rows := make([][]string, 0, len(cities))
	for _, c := range cities {
		rows = append(rows, []string{
			Bold(c.Name),
			fmt.Sprintf("%d", c.POICount),
			Dim(fmt.Sprintf("%.4f, %.4f", c.Center.Lat, c.Center.Lon)),
		})
	}
	return RenderBox("Destinations", RenderTableAligned(headers, rows, []int{1}))
}

// FormatPOIList renders a city's catalog in stored order. Missing optional
// fields show as "--".
func FormatPOIList(city *domain.City) string {
	headers := []string{"#", "NAME", "THEME", "COST", "DURATION", "RATING", "REVIEWS"}
	rows := make([][]string, 0, len(city.POIs))
	for i, p := range city.POIs {
		rows = append(rows, poiRow(i+1, p))
	}
	return RenderBox(city.Name, RenderTableAligned(headers, rows, []int{0, 3, 4, 6}))
}

// FormatRankedPOIs renders a city's POIs in planner ranking order with the
// factors behind each score.
func FormatRankedPOIs(city *domain.City, ranked []planner.ScoredCandidate) string {
	headers := []string{"#", "NAME", "THEME", "COST", "SCORE", "WHY"}
	rows := make([][]string, 0, len(ranked))
	for i, c := range ranked {
		cost := Dim("--")
		if c.POI.Cost != nil {
			cost = Money(*c.POI.Cost)
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			Bold(c.POI.Name),
			ThemeBadge(c.POI.Theme),
			cost,
			fmt.Sprintf("%.2f", c.Score),
			Dim(formatReasons(c.Reasons)),
		})
	}
	return RenderBox(city.Name+" ranked", RenderTableAligned(headers, rows, []int{0, 3, 4}))
}

var reasonLabels = map[planner.ScoreReasonCode]string{
	planner.ReasonThemeMatch:    "theme",
	planner.ReasonThemeMismatch: "other theme",
	planner.ReasonMoodBonus:     "mood",
	planner.ReasonRatingBonus:   "rating",
	planner.ReasonCostPenalty:   "cost",
}

func formatReasons(reasons []planner.ScoreReason) string {
	parts := make([]string, 0, len(reasons))
	for _, r := range reasons {
		label, ok := reasonLabels[r.Code]
		if !ok {
			label = strings.ToLower(string(r.Code))
		}
		parts = append(parts, fmt.Sprintf("%s %+.2f", label, r.Delta))
	}
	return strings.Join(parts, ", ")
}

// FormatAlternatives lists POIs that could be added to or swapped into a day.
func FormatAlternatives(dayIdx int, pois []domain.PointOfInterest) string {
	title := fmt.Sprintf("Alternatives for day %d", dayIdx+1)
	if len(pois) == 0 {
		return RenderBox(title, Dim("Every catalog entry is already on this day."))
	}
	headers := []string{"#", "NAME", "THEME", "COST", "DURATION", "RATING", "REVIEWS"}
	rows := make([][]string, 0, len(pois))
	for i, p := range pois {
		rows = append(rows, poiRow(i+1, p))
	}
	return RenderBox(title, RenderTableAligned(headers, rows, []int{0, 3, 4, 6}))
}

func poiRow(n int, p domain.PointOfInterest) []string {
	cost, dur, rating, reviews := Dim("--"), Dim("--"), Dim("★ --"), Dim("--")
	if p.Cost != nil {
		cost = Money(*p.Cost)
	}
	if p.DurationMin != nil {
		dur = FormatMinutes(*p.DurationMin)
	}
	if p.Rating != nil {
		rating = RatingBadge(*p.Rating)
	}
	if p.Reviews != nil {
		reviews = fmt.Sprintf("%d", *p.Reviews)
	}
	return []string{Dim(fmt.Sprintf("%d", n)), Bold(p.Name), ThemeBadge(p.Theme), cost, dur, rating, reviews}
}

func FormatImportResult(res *app.ImportResult) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✔ ") + fmt.Sprintf("Imported %d cities, %d points of interest", res.Cities, res.POIs))
	if len(res.Replaced) > 0 {
		b.WriteString("\n" + Dim("  replaced: "+strings.Join(res.Replaced, ", ")))
	}
	return b.String()
}
