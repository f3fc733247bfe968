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
)

// mutateTrip loads a trip inside a transaction, applies fn and writes the
// trip back when fn reports a change.
func mutateTrip(ctx context.Context, uow db.UnitOfWork, id string, fn func(tx db.DBTX, t *domain.Trip) (bool, error)) (*domain.Trip, error) {
	return db.InTx(ctx, uow, func(ctx context.Context, tx db.DBTX) (*domain.Trip, error) {
		trips := repository.NewSQLiteTripRepo(tx)
		t, err := trips.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		changed, err := fn(tx, t)
		if err != nil {
			return nil, err
		}
		if changed {
			t.UpdatedAt = time.Now().UTC().Truncate(time.Second)
			if err := trips.Update(ctx, t); err != nil {
				return nil, err
			}
		}
		return t, nil
	})
}

// destinationCatalog returns the POIs of the trip's destination.
func destinationCatalog(ctx context.Context, cities repository.CatalogRepo, t *domain.Trip) (*domain.City, error) {
	city, err := cities.GetCity(ctx, t.Destination)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.PlanError{
				Code:    app.PlanErrUnknownDestination,
				Message: fmt.Sprintf("destination %q is not in the catalog", t.Destination),
			}
		}
		return nil, err
	}
	return city, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("catalog validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
