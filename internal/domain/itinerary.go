package domain

import (
	"fmt"
	"time"
)

// Default visiting window for a day.
const (
	DefaultDayStartHour = 9
	DefaultDayEndHour   = 21
)

// DayHours bounds the visiting window of a single day, in whole hours.
type DayHours struct {
	StartHour int
	EndHour   int
}

// DefaultDayHours returns the 09:00–21:00 window.
func DefaultDayHours() DayHours {
	return DayHours{StartHour: DefaultDayStartHour, EndHour: DefaultDayEndHour}
}

// Validate checks 0 <= start < end <= 23.
func (h DayHours) Validate() error {
	if h.StartHour < 0 || h.EndHour > 23 || h.StartHour >= h.EndHour {
		return fmt.Errorf("%w: start %d, end %d", ErrInvalidDayHours, h.StartHour, h.EndHour)
	}
	return nil
}

// ScheduledActivity is a POI placed on a day timeline. StartTime and EndTime
// are "HH:MM" and only valid until the day's activity list changes.
type ScheduledActivity struct {
	PointOfInterest
	StartTime string
	EndTime   string
}

// DayPlan is one calendar date and its activities in visit order.
type DayPlan struct {
	Date       time.Time
	Activities []ScheduledActivity
}

// POIs returns the day's activities stripped of their times, in visit order.
func (d DayPlan) POIs() []PointOfInterest {
	out := make([]PointOfInterest, len(d.Activities))
	for i, a := range d.Activities {
		out[i] = a.PointOfInterest
	}
	return out
}

// HasActivity reports whether an activity named name is on the day.
func (d DayPlan) HasActivity(name string) bool {
	for _, a := range d.Activities {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Subtotal sums the effective cost of the day's activities.
func (d DayPlan) Subtotal() float64 {
	var total float64
	for _, a := range d.Activities {
		total += a.EffectiveCost()
	}
	return total
}

// Itinerary is one full-trip variant: exactly one DayPlan per date of the
// trip window, in date order.
type Itinerary struct {
	Seed  int64
	Hours DayHours
	Days  []DayPlan
}

// Day returns a pointer to day i so callers can edit it in place.
func (it *Itinerary) Day(i int) (*DayPlan, error) {
	if i < 0 || i >= len(it.Days) {
		return nil, fmt.Errorf("%w: day %d of %d", ErrDayOutOfRange, i, len(it.Days))
	}
	return &it.Days[i], nil
}

// Clone returns a deep copy whose day and activity slices are independent of
// the receiver. POI optional fields are shared since catalog entries are
// never mutated.
func (it Itinerary) Clone() Itinerary {
	out := Itinerary{Seed: it.Seed, Hours: it.Hours, Days: make([]DayPlan, len(it.Days))}
	for i, d := range it.Days {
		acts := make([]ScheduledActivity, len(d.Activities))
		copy(acts, d.Activities)
		out.Days[i] = DayPlan{Date: d.Date, Activities: acts}
	}
	return out
}

// ActivityCount returns the number of scheduled activities across all days.
func (it Itinerary) ActivityCount() int {
	n := 0
	for _, d := range it.Days {
		n += len(d.Activities)
	}
	return n
}
