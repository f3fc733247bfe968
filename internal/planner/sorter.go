package planner

import (
	"sort"

	"github.com/alexanderramin/itinera/internal/domain"
)

// ShortlistSize is how many top-ranked POIs feed variant generation.
const ShortlistSize = 20

// Rank scores every POI and sorts by score, highest first. Equal scores keep
// catalog order.
func Rank(catalog []domain.PointOfInterest, prefs ThemeSet, mood float64) []ScoredCandidate {
	scored := make([]ScoredCandidate, len(catalog))
	for i, p := range catalog {
		scored[i] = ScorePOI(p, prefs, mood)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Shortlist returns the POIs of the top limit ranked candidates.
func Shortlist(catalog []domain.PointOfInterest, prefs ThemeSet, mood float64, limit int) []domain.PointOfInterest {
	ranked := Rank(catalog, prefs, mood)
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]domain.PointOfInterest, len(ranked))
	for i, c := range ranked {
		out[i] = c.POI
	}
	return out
}
