package planner

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/domain"
)

// TravelPadMin is the fixed transit buffer between consecutive activities.
const TravelPadMin = 30

// Timeline is a scheduled day. Dropped counts the activities that did not
// fit before the end of the day and were left out.
type Timeline struct {
	Activities []domain.ScheduledActivity
	Dropped    int
}

// ScheduleDay lays pois out back to back from hours.StartHour, separated by
// TravelPadMin. Scheduling stops at the first activity that would end after
// hours.EndHour; it and everything after it are dropped rather than deferred.
func ScheduleDay(pois []domain.PointOfInterest, hours domain.DayHours) Timeline {
	cursor := hours.StartHour * 60
	end := hours.EndHour * 60

	tl := Timeline{Activities: make([]domain.ScheduledActivity, 0, len(pois))}
	for i, p := range pois {
		d := p.EffectiveDurationMin()
		if d > end-cursor {
			tl.Dropped = len(pois) - i
			break
		}
		finish := cursor + d
		tl.Activities = append(tl.Activities, domain.ScheduledActivity{
			PointOfInterest: p,
			StartTime:       FormatClock(cursor),
			EndTime:         FormatClock(finish),
		})
		cursor = finish + TravelPadMin
	}
	return tl
}

// RescheduleDay rebuilds day's timeline from its current activity order and
// returns how many activities were dropped.
func RescheduleDay(day *domain.DayPlan, hours domain.DayHours) int {
	tl := ScheduleDay(day.POIs(), hours)
	day.Activities = tl.Activities
	return tl.Dropped
}

// FormatClock renders minutes after midnight as "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// ParseClock parses "HH:MM" into minutes after midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parsing clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parsing clock %q: out of range", s)
	}
	return h*60 + m, nil
}
