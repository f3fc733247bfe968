package planner

import (
	"math"

	"github.com/alexanderramin/itinera/internal/domain"
)

// ScoreReasonCode names a factor that contributed to a POI's score.
type ScoreReasonCode string

const (
	ReasonThemeMatch    ScoreReasonCode = "THEME_MATCH"
	ReasonThemeMismatch ScoreReasonCode = "THEME_MISMATCH"
	ReasonMoodBonus     ScoreReasonCode = "MOOD_BONUS"
	ReasonRatingBonus   ScoreReasonCode = "RATING_BONUS"
	ReasonCostPenalty   ScoreReasonCode = "COST_PENALTY"
)

// ScoreReason records one factor's signed contribution.
type ScoreReason struct {
	Code  ScoreReasonCode
	Delta float64
}

// ScoredCandidate pairs a POI with its affinity score for one scoring pass.
type ScoredCandidate struct {
	POI     domain.PointOfInterest
	Score   float64
	Reasons []ScoreReason
}

// ThemeSet is an unordered set of preferred themes.
type ThemeSet map[string]struct{}

// NewThemeSet builds a ThemeSet, ignoring empty strings.
func NewThemeSet(themes ...string) ThemeSet {
	s := make(ThemeSet, len(themes))
	for _, t := range themes {
		if t != "" {
			s[t] = struct{}{}
		}
	}
	return s
}

// Has reports whether theme is preferred.
func (s ThemeSet) Has(theme string) bool {
	_, ok := s[theme]
	return ok
}

type scoreFactor func(poi domain.PointOfInterest, prefs ThemeSet, mood float64) ScoreReason

// Factor order matters for float reproducibility: theme, mood, rating, cost.
var scoreFactors = []scoreFactor{
	scoreTheme,
	scoreMood,
	scoreRating,
	scoreCost,
}

// Score returns the affinity of poi for a traveller with the given preferred
// themes and mood (0–10). Never negative.
func Score(poi domain.PointOfInterest, prefs ThemeSet, mood float64) float64 {
	return ScorePOI(poi, prefs, mood).Score
}

// ScorePOI scores poi and keeps the per-factor breakdown.
func ScorePOI(poi domain.PointOfInterest, prefs ThemeSet, mood float64) ScoredCandidate {
	result := ScoredCandidate{POI: poi}
	var score float64
	for _, f := range scoreFactors {
		r := f(poi, prefs, mood)
		score += r.Delta
		if r.Delta != 0 || r.Code == ReasonThemeMismatch {
			result.Reasons = append(result.Reasons, r)
		}
	}
	result.Score = math.Max(0, score)
	return result
}

func scoreTheme(poi domain.PointOfInterest, prefs ThemeSet, _ float64) ScoreReason {
	if prefs.Has(poi.Theme) {
		return ScoreReason{Code: ReasonThemeMatch, Delta: 1.0}
	}
	return ScoreReason{Code: ReasonThemeMismatch, Delta: 0.2}
}

func scoreMood(_ domain.PointOfInterest, _ ThemeSet, mood float64) ScoreReason {
	return ScoreReason{Code: ReasonMoodBonus, Delta: 0.5 * (mood / 10.0)}
}

func scoreRating(poi domain.PointOfInterest, _ ThemeSet, _ float64) ScoreReason {
	return ScoreReason{Code: ReasonRatingBonus, Delta: (poi.EffectiveRating() - 4.0) * 0.15}
}

func scoreCost(poi domain.PointOfInterest, _ ThemeSet, _ float64) ScoreReason {
	cost := poi.EffectiveCost()
	var penalty float64
	switch {
	case cost > 1500:
		penalty = 0.4
	case cost > 800:
		penalty = 0.2
	}
	return ScoreReason{Code: ReasonCostPenalty, Delta: -penalty}
}
