package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/google/uuid"
)

var testPOICounter atomic.Int64

// POI options
type POIOption func(*domain.PointOfInterest)

func WithCost(c float64) POIOption {
	return func(p *domain.PointOfInterest) {
		p.Cost = &c
	}
}

func WithDuration(min int) POIOption {
	return func(p *domain.PointOfInterest) {
		p.DurationMin = &min
	}
}

func WithRating(r float64) POIOption {
	return func(p *domain.PointOfInterest) {
		p.Rating = &r
	}
}

func WithReviews(n int) POIOption {
	return func(p *domain.PointOfInterest) {
		p.Reviews = &n
	}
}

func WithTheme(theme string) POIOption {
	return func(p *domain.PointOfInterest) {
		p.Theme = theme
	}
}

func WithLocation(lat, lon float64) POIOption {
	return func(p *domain.PointOfInterest) {
		p.Location = domain.Coordinates{Lat: lat, Lon: lon}
	}
}

// NewTestPOI returns a 60-minute heritage POI costing 100 and rated 4.0.
func NewTestPOI(name string, opts ...POIOption) domain.PointOfInterest {
	p := domain.PointOfInterest{
		Name:        name,
		Theme:       "heritage",
		Cost:        domain.Float64Ptr(100),
		DurationMin: domain.IntPtr(60),
		Rating:      domain.Float64Ptr(4.0),
		Location:    domain.DefaultCityCenter,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestCity returns a city with n distinct POIs cycling through the known
// themes, with costs rising by 50 per POI.
func NewTestCity(name string, n int) domain.City {
	c := domain.City{Name: name, Center: domain.DefaultCityCenter}
	for i := 0; i < n; i++ {
		theme := domain.KnownThemes[i%len(domain.KnownThemes)]
		c.POIs = append(c.POIs, NewTestPOI(
			fmt.Sprintf("%s POI %d", name, testPOICounter.Add(1)),
			WithTheme(theme),
			WithCost(float64(100+50*i)),
			WithDuration(60+30*(i%3)),
			WithLocation(c.Center.Lat+0.01*float64(i%5), c.Center.Lon+0.01*float64(i%7)),
		))
	}
	return c
}

// Trip options
type TripOption func(*domain.Trip)

func WithDates(start, end time.Time) TripOption {
	return func(t *domain.Trip) {
		t.StartDate = start
		t.EndDate = end
	}
}

func WithVariants(variants ...domain.Itinerary) TripOption {
	return func(t *domain.Trip) {
		t.Itineraries = domain.ItinerarySet{Variants: variants}
	}
}

func WithChosenTravel(offers ...domain.TravelOffer) TripOption {
	return func(t *domain.Trip) {
		for _, o := range offers {
			t.ChosenTravel[o.Mode] = o
		}
	}
}

// NewTestItinerary returns a one-day variant dated 2025-03-01 with the given
// activities scheduled back to back from 09:00 in 60-minute slots.
func NewTestItinerary(seed int64, pois ...domain.PointOfInterest) domain.Itinerary {
	day := domain.DayPlan{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	for i, p := range pois {
		start := 9*60 + i*90
		day.Activities = append(day.Activities, domain.ScheduledActivity{
			PointOfInterest: p,
			StartTime:       fmt.Sprintf("%02d:%02d", start/60, start%60),
			EndTime:         fmt.Sprintf("%02d:%02d", (start+60)/60, (start+60)%60),
		})
	}
	return domain.Itinerary{Seed: seed, Hours: domain.DefaultDayHours(), Days: []domain.DayPlan{day}}
}

func NewTestTrip(destination string, opts ...TripOption) *domain.Trip {
	now := time.Now().UTC().Truncate(time.Second)
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	t := &domain.Trip{
		ID:           uuid.New().String(),
		Origin:       "Hyderabad",
		Destination:  destination,
		StartDate:    start,
		EndDate:      start,
		Budget:       5000,
		PartySize:    2,
		Themes:       []string{"heritage"},
		Mood:         5,
		Modes:        []domain.TravelMode{domain.ModeTrain},
		Hours:        domain.DefaultDayHours(),
		BaseSeed:     42,
		Sequence:     domain.SequenceIdentity,
		Itineraries:  domain.ItinerarySet{Variants: []domain.Itinerary{NewTestItinerary(42, NewTestPOI("Fort"))}},
		ChosenTravel: map[domain.TravelMode]domain.TravelOffer{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
