package domain

import (
	"fmt"
	"time"
)

// Trip is the persisted planning session: the traveller's inputs, the
// generated variants and any travel offers they picked.
type Trip struct {
	ID          string
	Origin      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	PartySize   int
	Themes      []string
	Mood        float64
	Modes       []TravelMode
	Hours       DayHours
	BaseSeed    int64
	Sequence    SequenceStrategy

	Itineraries ItinerarySet
	// ChosenTravel holds at most one offer per mode.
	ChosenTravel map[TravelMode]TravelOffer

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayCount returns the number of dates in [StartDate, EndDate].
func (t *Trip) DayCount() int {
	return TripDayCount(t.StartDate, t.EndDate)
}

// TripDayCount counts calendar dates in the inclusive window, or 0 when end
// precedes start.
func TripDayCount(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// TripDates returns every date in the inclusive window, in order.
func TripDates(start, end time.Time) ([]time.Time, error) {
	n := TripDayCount(start, end)
	if n == 0 {
		return nil, fmt.Errorf("%w: end %s before start %s",
			ErrInvalidTripWindow, end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = first.AddDate(0, 0, i)
	}
	return dates, nil
}

// ShortID returns the first 8 characters of the trip ID for display.
func (t *Trip) ShortID() string {
	if len(t.ID) >= 8 {
		return t.ID[:8]
	}
	return t.ID
}
