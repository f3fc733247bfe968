package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/app"
	"github.com/alexanderramin/itinera/internal/catalog"
	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/repository"
)

type catalogService struct {
	cities   repository.CatalogRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewCatalogService(cities repository.CatalogRepo, uow db.UnitOfWork, observers ...UseCaseObserver) app.CatalogUseCase {
	return &catalogService{cities: cities, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *catalogService) Import(ctx context.Context, path string) (*app.ImportResult, error) {
	f, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return s.ImportFile(ctx, f)
}

// ImportFile validates f and replaces every city it names in one transaction.
// Cities not named in f are left untouched.
func (s *catalogService) ImportFile(ctx context.Context, f catalog.File) (result *app.ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"cities": len(f)}
	defer observe(ctx, s.observer, "import-catalog", startedAt, fields, &err)

	if errs := catalog.Validate(f); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	cities := catalog.Convert(f)
	result = &app.ImportResult{Cities: len(cities)}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCatalogRepo(tx)
		for _, c := range cities {
			if _, err := repo.GetCity(ctx, c.Name); err == nil {
				result.Replaced = append(result.Replaced, c.Name)
			} else if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			if err := repo.ReplaceCity(ctx, c); err != nil {
				return fmt.Errorf("storing %s: %w", c.Name, err)
			}
			result.POIs += len(c.POIs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["pois"] = result.POIs
	return result, nil
}

func (s *catalogService) Cities(ctx context.Context) ([]repository.CitySummary, error) {
	return s.cities.ListCities(ctx)
}

func (s *catalogService) City(ctx context.Context, name string) (*domain.City, error) {
	return s.cities.GetCity(ctx, name)
}
