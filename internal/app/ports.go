package app

import (
	"context"

	"github.com/alexanderramin/itinera/internal/catalog"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/planner"
	"github.com/alexanderramin/itinera/internal/repository"
)

type TripUseCase interface {
	Generate(ctx context.Context, req TripRequest) (*domain.Trip, error)
	Get(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context) ([]*domain.Trip, error)
	Delete(ctx context.Context, id string) error
	SelectVariant(ctx context.Context, id string, variant int) (*domain.Trip, error)
	DuplicateVariant(ctx context.Context, id string) (*domain.Trip, error)
	DeleteVariant(ctx context.Context, id string) (*domain.Trip, error)
}

// EditUseCase edits the current variant of a trip. Day indexes are
// zero-based.
type EditUseCase interface {
	Swap(ctx context.Context, tripID string, day int, out, in string) (*EditResult, error)
	Add(ctx context.Context, tripID string, day int, name string) (*EditResult, error)
	Remove(ctx context.Context, tripID string, day int, names []string) (*EditResult, error)
	Alternatives(ctx context.Context, tripID string, day int) ([]domain.PointOfInterest, error)
}

type TravelUseCase interface {
	Offers(ctx context.Context, tripID string) (map[domain.TravelMode][]domain.TravelOffer, error)
	Choose(ctx context.Context, tripID string, mode domain.TravelMode, index int) (*domain.Trip, error)
}

type CostUseCase interface {
	Costs(ctx context.Context, tripID string) (planner.CostBreakdown, error)
	Bill(ctx context.Context, tripID string) (planner.Bill, error)
	Quote(ctx context.Context, tripID string, day int) (*DayQuote, error)
}

type CatalogUseCase interface {
	Import(ctx context.Context, path string) (*ImportResult, error)
	ImportFile(ctx context.Context, f catalog.File) (*ImportResult, error)
	Cities(ctx context.Context) ([]repository.CitySummary, error)
	City(ctx context.Context, name string) (*domain.City, error)
}
