package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/app"
	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/alexanderramin/itinera/internal/travel"
)

// ErrOfferNotFound is returned when a chosen offer does not exist.
var ErrOfferNotFound = errors.New("travel offer not found")

type travelService struct {
	trips    repository.TripRepo
	cities   repository.CatalogRepo
	supplier travel.Supplier
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTravelService(trips repository.TripRepo, cities repository.CatalogRepo, supplier travel.Supplier, uow db.UnitOfWork, observers ...UseCaseObserver) app.TravelUseCase {
	if supplier == nil {
		supplier = travel.NewMockSupplier()
	}
	return &travelService{trips: trips, cities: cities, supplier: supplier, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// Offers searches the trip's requested modes. The search is seeded with the
// trip's base seed so repeated calls list the same offers.
func (s *travelService) Offers(ctx context.Context, tripID string) (map[domain.TravelMode][]domain.TravelOffer, error) {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return s.search(ctx, t)
}

func (s *travelService) search(ctx context.Context, t *domain.Trip) (map[domain.TravelMode][]domain.TravelOffer, error) {
	if len(t.Modes) == 0 {
		return map[domain.TravelMode][]domain.TravelOffer{}, nil
	}
	origin, err := s.cityCenter(ctx, t.Origin)
	if err != nil {
		return nil, err
	}
	dest, err := s.cityCenter(ctx, t.Destination)
	if err != nil {
		return nil, err
	}
	return s.supplier.Search(ctx, travel.SearchRequest{
		Origin:      origin,
		Destination: dest,
		PartySize:   t.PartySize,
		Modes:       t.Modes,
		Seed:        t.BaseSeed,
	})
}

// cityCenter falls back to the default center for cities outside the catalog.
func (s *travelService) cityCenter(ctx context.Context, name string) (domain.Coordinates, error) {
	if name == "" {
		return domain.DefaultCityCenter, nil
	}
	c, err := s.cities.GetCity(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.DefaultCityCenter, nil
	}
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("locating %s: %w", name, err)
	}
	return c.Center, nil
}

// Choose records offer index (zero-based) of mode as the trip's pick for that
// mode, replacing any earlier pick.
func (s *travelService) Choose(ctx context.Context, tripID string, mode domain.TravelMode, index int) (trip *domain.Trip, err error) {
	startedAt := time.Now()
	fields := map[string]any{"trip_id": tripID, "mode": string(mode)}
	defer observe(ctx, s.observer, "choose-travel", startedAt, fields, &err)

	if !domain.ValidTravelModes[string(mode)] {
		return nil, &app.PlanError{Code: app.PlanErrInvalidRequest, Message: fmt.Sprintf("unknown travel mode %q", mode)}
	}
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	offers, err := s.search(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("searching offers: %w", err)
	}
	list, ok := offers[mode]
	if !ok {
		return nil, fmt.Errorf("%w: trip %s did not request %s", ErrOfferNotFound, t.ShortID(), mode)
	}
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: %s offer %d of %d", ErrOfferNotFound, mode, index+1, len(list))
	}
	picked := list[index]

	trip, err = mutateTrip(ctx, s.uow, t.ID, func(_ db.DBTX, t *domain.Trip) (bool, error) {
		if t.ChosenTravel == nil {
			t.ChosenTravel = map[domain.TravelMode]domain.TravelOffer{}
		}
		t.ChosenTravel[mode] = picked
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	fields["provider"] = picked.Provider
	fields["price"] = picked.Price
	return trip, nil
}
