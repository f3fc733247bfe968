package planner

import (
	"testing"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoDayItinerary() domain.Itinerary {
	return domain.Itinerary{
		Hours: domain.DefaultDayHours(),
		Days: []domain.DayPlan{
			{Date: date(2025, 3, 1), Activities: []domain.ScheduledActivity{
				{PointOfInterest: poi("A", "x", 250.5, 60, 4)},
				{PointOfInterest: poi("B", "x", 100, 60, 4)},
			}},
			{Date: date(2025, 3, 2), Activities: []domain.ScheduledActivity{
				{PointOfInterest: poi("C", "x", 400, 60, 4)},
			}},
		},
	}
}

func TestComputeCosts(t *testing.T) {
	travel := map[domain.TravelMode]domain.TravelOffer{
		domain.ModeFlight: {Mode: domain.ModeFlight, Provider: "IndiGo", Price: 4999.5},
		domain.ModeCab:    {Mode: domain.ModeCab, Provider: "Local Taxi Co.", Price: 1200},
	}
	cb := ComputeCosts(twoDayItinerary(), travel)

	require.Len(t, cb.PerDay, 2)
	assert.InDelta(t, 350.5, cb.PerDay[0].Subtotal, 1e-9)
	assert.InDelta(t, 400.0, cb.PerDay[1].Subtotal, 1e-9)
	assert.InDelta(t, 750.5, cb.ActivitiesTotal, 1e-9)
	assert.InDelta(t, 6199.5, cb.TravelTotal, 1e-9)
	assert.InDelta(t, 6950.0, cb.GrandTotal, 1e-9)
}

func TestComputeBill(t *testing.T) {
	travel := map[domain.TravelMode]domain.TravelOffer{
		domain.ModeTrain:  {Mode: domain.ModeTrain, Provider: "Rajdhani", Price: 1500, Depart: "09:00", Arrive: "18:30"},
		domain.ModeFlight: {Mode: domain.ModeFlight, Provider: "IndiGo", Price: 5000, Depart: "08:00", Arrive: "09:30"},
	}
	b := ComputeBill(twoDayItinerary(), travel)

	require.Len(t, b.Lines, 4)
	assert.Contains(t, b.Lines[0].Item, "Flight")
	assert.Contains(t, b.Lines[1].Item, "Train")
	assert.Contains(t, b.Lines[2].Item, "Day 1")
	assert.Equal(t, 350, b.Lines[2].Total)

	// 6500 travel + int(750.5) activities
	assert.Equal(t, 7250, b.Subtotal)
	assert.Equal(t, 870, b.Tax)
	assert.Equal(t, 109, b.PlatformFee)
	assert.Equal(t, 8229, b.AmountDue)
}

func TestComputeBill_NoTravel(t *testing.T) {
	b := ComputeBill(twoDayItinerary(), nil)
	require.Len(t, b.Lines, 2)
	assert.Equal(t, b.Subtotal+b.Tax+b.PlatformFee, b.AmountDue)
}
