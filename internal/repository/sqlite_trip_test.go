package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoVariantTrip() *domain.Trip {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	v1 := testutil.NewTestItinerary(42,
		testutil.NewTestPOI("Fort", testutil.WithReviews(1200)),
		testutil.NewTestPOI("Lake", testutil.WithTheme("leisure"), testutil.WithCost(0)),
	)
	v1.Days = append(v1.Days, domain.DayPlan{Date: start.AddDate(0, 0, 1)})
	v2 := testutil.NewTestItinerary(43, domain.PointOfInterest{Name: "Bare"})
	v2.Days = append(v2.Days, domain.DayPlan{Date: start.AddDate(0, 0, 1), Activities: []domain.ScheduledActivity{
		{PointOfInterest: testutil.NewTestPOI("Museum"), StartTime: "09:00", EndTime: "10:00"},
	}})

	return testutil.NewTestTrip("Goa",
		testutil.WithDates(start, start.AddDate(0, 0, 1)),
		testutil.WithVariants(v1, v2),
		testutil.WithChosenTravel(domain.TravelOffer{
			Mode: domain.ModeFlight, Provider: "IndiGo", Price: 5400, Currency: "INR",
			Depart: "08:10", Arrive: "09:40", DurationMin: 80, Rating: 4.2, Reviews: 900,
		}),
	)
}

func TestTripRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	trip := twoVariantTrip()
	trip.Itineraries.Current = 1
	require.NoError(t, repo.Create(ctx, trip))

	fetched, err := repo.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, trip, fetched)
}

func TestTripRepo_GetByIDPrefix(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	trip := testutil.NewTestTrip("Goa")
	trip.ID = "abc12345-0000"
	require.NoError(t, repo.Create(ctx, trip))
	other := testutil.NewTestTrip("Agra")
	other.ID = "abd99999-0000"
	require.NoError(t, repo.Create(ctx, other))

	fetched, err := repo.GetByID(ctx, "abc1")
	require.NoError(t, err)
	assert.Equal(t, trip.ID, fetched.ID)

	_, err = repo.GetByID(ctx, "ab")
	assert.ErrorIs(t, err, ErrAmbiguousID)

	_, err = repo.GetByID(ctx, "zzz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, "a%")
	assert.ErrorIs(t, err, ErrNotFound, "LIKE wildcards in the prefix are literal")
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)

	_, err := repo.GetByID(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTripRepo_UpdateReplacesVariantsAndTravel(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	trip := twoVariantTrip()
	require.NoError(t, repo.Create(ctx, trip))

	trip.Itineraries.Variants = trip.Itineraries.Variants[:1]
	trip.Itineraries.Variants[0].Days[0].Activities = trip.Itineraries.Variants[0].Days[0].Activities[:1]
	trip.ChosenTravel = map[domain.TravelMode]domain.TravelOffer{
		domain.ModeBus: {Mode: domain.ModeBus, Provider: "VRL", Price: 900, Currency: "INR"},
	}
	trip.Sequence = domain.SequenceProximity
	trip.UpdatedAt = trip.UpdatedAt.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, trip))

	fetched, err := repo.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, trip, fetched)
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)

	err := repo.Update(context.Background(), testutil.NewTestTrip("Goa"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTripRepo_ListNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	older := testutil.NewTestTrip("Agra")
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	newer := testutil.NewTestTrip("Goa")
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	trips, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "Goa", trips[0].Destination)
	assert.Equal(t, "Agra", trips[1].Destination)
	assert.Equal(t, 1, trips[1].Itineraries.Len())
}

func TestTripRepo_DeleteRemovesChildren(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	trip := twoVariantTrip()
	require.NoError(t, repo.Create(ctx, trip))
	require.NoError(t, repo.Delete(ctx, trip.ID))

	_, err := repo.GetByID(ctx, trip.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	for _, table := range []string{"trip_variants", "variant_days", "day_activities", "trip_travel"} {
		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
		assert.Zero(t, n, table)
	}

	assert.ErrorIs(t, repo.Delete(ctx, trip.ID), ErrNotFound)
}
