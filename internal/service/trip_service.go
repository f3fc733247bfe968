package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/itinera/internal/app"
	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/planner"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type tripService struct {
	trips    repository.TripRepo
	cities   repository.CatalogRepo
	uow      db.UnitOfWork
	validate *validator.Validate
	clock    func() time.Time
	observer UseCaseObserver
}

func NewTripService(trips repository.TripRepo, cities repository.CatalogRepo, uow db.UnitOfWork, observers ...UseCaseObserver) app.TripUseCase {
	return &tripService{
		trips:    trips,
		cities:   cities,
		uow:      uow,
		validate: app.NewRequestValidator(),
		clock:    time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Generate validates req, builds req.Variants itineraries for the destination
// and stores them as a new trip.
func (s *tripService) Generate(ctx context.Context, req app.TripRequest) (trip *domain.Trip, err error) {
	startedAt := time.Now()
	fields := map[string]any{"destination": req.Destination, "variants": req.Variants}
	defer observe(ctx, s.observer, "generate-trip", startedAt, fields, &err)

	if err := app.ValidateTripRequest(s.validate, req); err != nil {
		return nil, err
	}

	city, err := s.cities.GetCity(ctx, req.Destination)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.PlanError{
				Code:    app.PlanErrUnknownDestination,
				Message: fmt.Sprintf("destination %q is not in the catalog", req.Destination),
			}
		}
		return nil, err
	}
	if len(city.POIs) == 0 {
		return nil, &app.PlanError{
			Code:    app.PlanErrEmptyCatalog,
			Message: fmt.Sprintf("destination %q has no points of interest", city.Name),
		}
	}

	strategy := domain.SequenceStrategy(req.Sequence)
	if strategy == "" {
		strategy = domain.SequenceIdentity
	}
	seq, err := planner.SequencerFor(strategy)
	if err != nil {
		return nil, &app.PlanError{Code: app.PlanErrInvalidRequest, Message: err.Error()}
	}

	now := s.clock().UTC()
	baseSeed := now.UnixNano()
	if req.Seed != nil {
		baseSeed = *req.Seed
	}
	hours := domain.DayHours{StartHour: req.StartHour, EndHour: req.EndHour}

	variants, err := planner.BuildVariants(planner.BuildParams{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Catalog:     city.POIs,
		Preferences: planner.NewThemeSet(req.Themes...),
		Mood:        req.Mood,
		TotalBudget: req.Budget,
		Hours:       hours,
		Sequencer:   seq,
	}, baseSeed, req.Variants)
	if err != nil {
		return nil, fmt.Errorf("building itineraries: %w", err)
	}
	set, err := domain.NewItinerarySet(variants)
	if err != nil {
		return nil, err
	}

	now = now.Truncate(time.Second)
	trip = &domain.Trip{
		ID:           uuid.New().String(),
		Origin:       strings.TrimSpace(req.Origin),
		Destination:  city.Name,
		StartDate:    variants[0].Days[0].Date,
		EndDate:      variants[0].Days[len(variants[0].Days)-1].Date,
		Budget:       req.Budget,
		PartySize:    req.PartySize,
		Themes:       req.Themes,
		Mood:         req.Mood,
		Modes:        req.Modes,
		Hours:        hours,
		BaseSeed:     baseSeed,
		Sequence:     strategy,
		Itineraries:  *set,
		ChosenTravel: map[domain.TravelMode]domain.TravelOffer{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteTripRepo(tx).Create(ctx, trip)
	})
	if err != nil {
		return nil, fmt.Errorf("saving trip: %w", err)
	}
	fields["trip_id"] = trip.ID
	fields["days"] = trip.DayCount()
	fields["seed"] = baseSeed
	return trip, nil
}

func (s *tripService) Get(ctx context.Context, id string) (*domain.Trip, error) {
	return s.trips.GetByID(ctx, id)
}

func (s *tripService) List(ctx context.Context) ([]*domain.Trip, error) {
	return s.trips.List(ctx)
}

func (s *tripService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "delete-trip", startedAt, map[string]any{"trip_id": id}, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		trips := repository.NewSQLiteTripRepo(tx)
		t, err := trips.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return trips.Delete(ctx, t.ID)
	})
}

// SelectVariant makes the zero-based variant current.
func (s *tripService) SelectVariant(ctx context.Context, id string, variant int) (*domain.Trip, error) {
	return mutateTrip(ctx, s.uow, id, func(_ db.DBTX, t *domain.Trip) (bool, error) {
		if err := t.Itineraries.Select(variant); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (s *tripService) DuplicateVariant(ctx context.Context, id string) (*domain.Trip, error) {
	return mutateTrip(ctx, s.uow, id, func(_ db.DBTX, t *domain.Trip) (bool, error) {
		t.Itineraries.DuplicateCurrent()
		return true, nil
	})
}

// DeleteVariant removes the current variant. The last variant of a trip
// cannot be deleted.
func (s *tripService) DeleteVariant(ctx context.Context, id string) (*domain.Trip, error) {
	return mutateTrip(ctx, s.uow, id, func(_ db.DBTX, t *domain.Trip) (bool, error) {
		if err := t.Itineraries.DeleteCurrent(); err != nil {
			return false, err
		}
		return true, nil
	})
}
