package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleTrip() *domain.Trip {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	fort := domain.PointOfInterest{Name: "Fort Aguada", Theme: "heritage", Cost: domain.Float64Ptr(50), DurationMin: domain.IntPtr(90), Rating: domain.Float64Ptr(4.4)}
	beach := domain.PointOfInterest{Name: "Baga Beach", Theme: "leisure", Cost: domain.Float64Ptr(0), DurationMin: domain.IntPtr(120), Rating: domain.Float64Ptr(4.3)}
	return &domain.Trip{
		ID:          "0123456789abcdef",
		Origin:      "Hyderabad",
		Destination: "Goa",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 1),
		Budget:      4000,
		PartySize:   2,
		Themes:      []string{"heritage"},
		Hours:       domain.DefaultDayHours(),
		Sequence:    domain.SequenceIdentity,
		Itineraries: domain.ItinerarySet{Variants: []domain.Itinerary{{
			Seed:  42,
			Hours: domain.DefaultDayHours(),
			Days: []domain.DayPlan{
				{Date: start, Activities: []domain.ScheduledActivity{
					{PointOfInterest: fort, StartTime: "09:00", EndTime: "10:30"},
					{PointOfInterest: beach, StartTime: "11:00", EndTime: "13:00"},
				}},
				{Date: start.AddDate(0, 0, 1)},
			},
		}}},
		ChosenTravel: map[domain.TravelMode]domain.TravelOffer{
			domain.ModeTrain: {Mode: domain.ModeTrain, Provider: "Rajdhani", Price: 1800, Depart: "07:00", Arrive: "19:30"},
		},
		CreatedAt: start,
	}
}

func TestFormatTrip(t *testing.T) {
	out := stripANSI(FormatTrip(sampleTrip()))

	assert.Contains(t, out, "GOA · 01234567")
	assert.Contains(t, out, "01 Mar – 02 Mar 2025")
	assert.Contains(t, out, "DAY 1 · SAT 01 MAR")
	assert.Contains(t, out, "09:00–10:30")
	assert.Contains(t, out, "Fort Aguada")
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "Day subtotal ₹50")
	assert.Contains(t, out, "Free day")
	assert.Contains(t, out, "Rajdhani")
	assert.Contains(t, out, "1 of 1")
}

func TestFormatTripList(t *testing.T) {
	trip := sampleTrip()
	out := stripANSI(FormatTripList([]*domain.Trip{trip}, trip.CreatedAt.Add(2*time.Hour)))

	assert.Contains(t, out, "01234567")
	assert.Contains(t, out, "Goa")
	assert.Contains(t, out, "₹4,000")
	assert.Contains(t, out, "2h ago")

	assert.Contains(t, stripANSI(FormatTripList(nil, time.Now())), "No trips yet")
}
