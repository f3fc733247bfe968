package app

import (
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/planner"
)

// EditResult is the trip after an edit plus what the edit did.
type EditResult struct {
	Trip    *domain.Trip
	Outcome planner.EditOutcome
}

// ImportResult summarizes a catalog import.
type ImportResult struct {
	Cities   int
	POIs     int
	Replaced []string
}

// DayQuote is the derived price of one day of the current variant.
type DayQuote struct {
	TripID string
	Day    int
	Quote  planner.Quote
}
