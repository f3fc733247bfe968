package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/itinera/internal/catalog"
	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/alexanderramin/itinera/internal/testutil"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db     *sql.DB
	uow    db.UnitOfWork
	trips  *repository.SQLiteTripRepo
	cities *repository.SQLiteCatalogRepo
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return fixture{
		db:     database,
		uow:    testutil.NewTestUoW(database),
		trips:  repository.NewSQLiteTripRepo(database),
		cities: repository.NewSQLiteCatalogRepo(database),
	}
}

func (f fixture) importSample(t *testing.T) {
	t.Helper()
	sample, err := catalog.Sample()
	require.NoError(t, err)
	for _, c := range catalog.Convert(sample) {
		require.NoError(t, f.cities.ReplaceCity(context.Background(), c))
	}
}

// editFixture stores a small destination with POIs A, B, X and Y (Y runs
// 120 minutes, the rest 60) and a trip whose only day is A, X, B.
func (f fixture) editFixture(t *testing.T) *domain.Trip {
	t.Helper()
	ctx := context.Background()
	city := domain.City{
		Name:   "Testville",
		Center: domain.DefaultCityCenter,
		POIs: []domain.PointOfInterest{
			testutil.NewTestPOI("A"),
			testutil.NewTestPOI("B"),
			testutil.NewTestPOI("X"),
			testutil.NewTestPOI("Y", testutil.WithDuration(120)),
		},
	}
	require.NoError(t, f.cities.ReplaceCity(ctx, city))

	trip := testutil.NewTestTrip("Testville", testutil.WithVariants(
		testutil.NewTestItinerary(42, city.POIs[0], city.POIs[2], city.POIs[1]),
	))
	require.NoError(t, f.trips.Create(ctx, trip))
	return trip
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func schedule(acts []domain.ScheduledActivity) [][3]string {
	out := make([][3]string, len(acts))
	for i, a := range acts {
		out[i] = [3]string{a.Name, a.StartTime, a.EndTime}
	}
	return out
}

func variantSchedule(it domain.Itinerary) [][][3]string {
	out := make([][][3]string, len(it.Days))
	for i, d := range it.Days {
		out[i] = schedule(d.Activities)
	}
	return out
}
