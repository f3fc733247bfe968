package service

import (
	"context"
	"time"

	"github.com/alexanderramin/itinera/internal/app"
	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/planner"
	"github.com/alexanderramin/itinera/internal/repository"
)

type editService struct {
	trips    repository.TripRepo
	cities   repository.CatalogRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewEditService(trips repository.TripRepo, cities repository.CatalogRepo, uow db.UnitOfWork, observers ...UseCaseObserver) app.EditUseCase {
	return &editService{trips: trips, cities: cities, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

type editFunc func(it *domain.Itinerary, catalog []domain.PointOfInterest) (planner.EditOutcome, error)

// apply runs fn against the trip's current variant inside a transaction. The
// trip is only written back when the edit was applied.
func (s *editService) apply(ctx context.Context, name, tripID string, day int, fn editFunc) (result *app.EditResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"trip_id": tripID, "day": day + 1}
	defer observe(ctx, s.observer, name, startedAt, fields, &err)

	var outcome planner.EditOutcome
	trip, err := mutateTrip(ctx, s.uow, tripID, func(tx db.DBTX, t *domain.Trip) (bool, error) {
		city, err := destinationCatalog(ctx, repository.NewSQLiteCatalogRepo(tx), t)
		if err != nil {
			return false, err
		}
		outcome, err = fn(t.Itineraries.CurrentVariant(), city.POIs)
		if err != nil {
			return false, err
		}
		return outcome.Applied, nil
	})
	if err != nil {
		return nil, err
	}
	fields["applied"] = outcome.Applied
	fields["dropped"] = outcome.Dropped
	if outcome.Skip != planner.SkipNone {
		fields["skip"] = string(outcome.Skip)
	}
	return &app.EditResult{Trip: trip, Outcome: outcome}, nil
}

func (s *editService) Swap(ctx context.Context, tripID string, day int, out, in string) (*app.EditResult, error) {
	return s.apply(ctx, "swap-activity", tripID, day, func(it *domain.Itinerary, catalog []domain.PointOfInterest) (planner.EditOutcome, error) {
		return planner.Swap(it, day, out, in, catalog)
	})
}

func (s *editService) Add(ctx context.Context, tripID string, day int, name string) (*app.EditResult, error) {
	return s.apply(ctx, "add-activity", tripID, day, func(it *domain.Itinerary, catalog []domain.PointOfInterest) (planner.EditOutcome, error) {
		return planner.Add(it, day, name, catalog)
	})
}

func (s *editService) Remove(ctx context.Context, tripID string, day int, names []string) (*app.EditResult, error) {
	return s.apply(ctx, "remove-activity", tripID, day, func(it *domain.Itinerary, _ []domain.PointOfInterest) (planner.EditOutcome, error) {
		return planner.RemoveNamed(it, day, names)
	})
}

// Alternatives lists destination POIs not already on the given day of the
// current variant.
func (s *editService) Alternatives(ctx context.Context, tripID string, day int) ([]domain.PointOfInterest, error) {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	dp, err := t.Itineraries.CurrentVariant().Day(day)
	if err != nil {
		return nil, err
	}
	city, err := destinationCatalog(ctx, s.cities, t)
	if err != nil {
		return nil, err
	}
	return planner.AvailableForDay(*dp, city.POIs), nil
}
