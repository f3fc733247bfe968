package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func variant(seed int64, names ...string) Itinerary {
	acts := make([]ScheduledActivity, len(names))
	for i, n := range names {
		acts[i] = ScheduledActivity{PointOfInterest: PointOfInterest{Name: n}}
	}
	return Itinerary{
		Seed:  seed,
		Hours: DefaultDayHours(),
		Days:  []DayPlan{{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Activities: acts}},
	}
}

func TestNewItinerarySet_RejectsEmpty(t *testing.T) {
	_, err := NewItinerarySet(nil)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestItinerarySet_Select(t *testing.T) {
	s, err := NewItinerarySet([]Itinerary{variant(1), variant(2)})
	require.NoError(t, err)

	require.NoError(t, s.Select(1))
	assert.Equal(t, int64(2), s.CurrentVariant().Seed)

	assert.ErrorIs(t, s.Select(2), ErrVariantOutOfRange)
	assert.ErrorIs(t, s.Select(-1), ErrVariantOutOfRange)
	assert.Equal(t, 1, s.Current, "failed select must not move the index")
}

func TestItinerarySet_DuplicateIsDeepCopy(t *testing.T) {
	s, err := NewItinerarySet([]Itinerary{variant(1, "A", "B")})
	require.NoError(t, err)

	idx := s.DuplicateCurrent()
	assert.Equal(t, 1, idx)
	assert.Equal(t, 1, s.Current)

	s.Variants[1].Days[0].Activities[0].Name = "Changed"
	assert.Equal(t, "A", s.Variants[0].Days[0].Activities[0].Name)
}

func TestItinerarySet_DeleteCurrentMovesToPrevious(t *testing.T) {
	s, err := NewItinerarySet([]Itinerary{variant(1), variant(2), variant(3)})
	require.NoError(t, err)
	require.NoError(t, s.Select(2))

	require.NoError(t, s.DeleteCurrent())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, int64(2), s.CurrentVariant().Seed)
}

func TestItinerarySet_DeleteFirstWhileOnFirst(t *testing.T) {
	s, err := NewItinerarySet([]Itinerary{variant(1), variant(2)})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCurrent())
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, int64(2), s.CurrentVariant().Seed)
}

func TestItinerarySet_DeleteEarlierKeepsCurrentVariant(t *testing.T) {
	s, err := NewItinerarySet([]Itinerary{variant(1), variant(2), variant(3)})
	require.NoError(t, err)
	require.NoError(t, s.Select(2))

	require.NoError(t, s.Delete(0))
	assert.Equal(t, int64(3), s.CurrentVariant().Seed)
}

func TestItinerarySet_DeleteLastRemainingRefused(t *testing.T) {
	s, err := NewItinerarySet([]Itinerary{variant(1)})
	require.NoError(t, err)

	err = s.DeleteCurrent()
	assert.ErrorIs(t, err, ErrLastVariant)
	assert.ErrorIs(t, err, ErrInvalidOperation)
	assert.Equal(t, 1, s.Len())
}

func TestItinerary_DayOutOfRange(t *testing.T) {
	it := variant(1, "A")
	_, err := it.Day(1)
	assert.ErrorIs(t, err, ErrDayOutOfRange)

	d, err := it.Day(0)
	require.NoError(t, err)
	assert.True(t, d.HasActivity("A"))
}

func TestDayPlan_Subtotal(t *testing.T) {
	d := DayPlan{Activities: []ScheduledActivity{
		{PointOfInterest: PointOfInterest{Name: "A", Cost: Float64Ptr(250)}},
		{PointOfInterest: PointOfInterest{Name: "B"}},
		{PointOfInterest: PointOfInterest{Name: "C", Cost: Float64Ptr(100.5)}},
	}}
	assert.Equal(t, 350.5, d.Subtotal())
	assert.Len(t, d.POIs(), 3)
}

func TestDayHours_Validate(t *testing.T) {
	assert.NoError(t, DefaultDayHours().Validate())
	assert.ErrorIs(t, DayHours{StartHour: 12, EndHour: 12}.Validate(), ErrInvalidDayHours)
	assert.ErrorIs(t, DayHours{StartHour: 9, EndHour: 24}.Validate(), ErrInvalidDayHours)
	assert.ErrorIs(t, DayHours{StartHour: -1, EndHour: 10}.Validate(), ErrInvalidDayHours)
}

func TestTripDates(t *testing.T) {
	start := time.Date(2025, 2, 27, 15, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	dates, err := TripDates(start, end)
	require.NoError(t, err)
	require.Len(t, dates, 3)
	assert.Equal(t, "2025-02-27", dates[0].Format("2006-01-02"))
	assert.Equal(t, "2025-03-01", dates[2].Format("2006-01-02"))

	_, err = TripDates(end, start)
	assert.ErrorIs(t, err, ErrInvalidTripWindow)
	assert.Equal(t, 1, TripDayCount(start, start))
}
