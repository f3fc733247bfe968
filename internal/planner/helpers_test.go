package planner

import (
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
)

func poi(name, theme string, cost float64, durationMin int, rating float64) domain.PointOfInterest {
	return domain.PointOfInterest{
		Name:        name,
		Theme:       theme,
		Cost:        domain.Float64Ptr(cost),
		DurationMin: domain.IntPtr(durationMin),
		Rating:      domain.Float64Ptr(rating),
	}
}

func names(pois []domain.PointOfInterest) []string {
	out := make([]string, len(pois))
	for i, p := range pois {
		out[i] = p.Name
	}
	return out
}

func activityNames(acts []domain.ScheduledActivity) []string {
	out := make([]string, len(acts))
	for i, a := range acts {
		out[i] = a.Name
	}
	return out
}

func testCatalog(n int) []domain.PointOfInterest {
	themes := []string{"heritage", "nightlife", "adventure", "leisure"}
	out := make([]domain.PointOfInterest, n)
	for i := range out {
		out[i] = poi(fmt.Sprintf("POI %02d", i), themes[i%len(themes)], float64(100+i*50), 60+(i%3)*30, 3.5+float64(i%4)*0.3)
	}
	return out
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
