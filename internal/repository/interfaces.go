package repository

import (
	"context"

	"github.com/alexanderramin/itinera/internal/domain"
)

// CitySummary is a catalog city without its POIs.
type CitySummary struct {
	Name     string
	Center   domain.Coordinates
	POICount int
}

type CatalogRepo interface {
	// ReplaceCity stores c, overwriting any city of the same name and its POIs.
	ReplaceCity(ctx context.Context, c domain.City) error
	GetCity(ctx context.Context, name string) (*domain.City, error)
	ListCities(ctx context.Context) ([]CitySummary, error)
	DeleteCity(ctx context.Context, name string) error
}

type TripRepo interface {
	Create(ctx context.Context, t *domain.Trip) error
	// GetByID accepts a full ID or a unique prefix of one.
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context) ([]*domain.Trip, error)
	// Update rewrites the trip row, its variants and its chosen travel.
	Update(ctx context.Context, t *domain.Trip) error
	Delete(ctx context.Context, id string) error
}
