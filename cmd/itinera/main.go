package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/itinera/internal/app"
	"github.com/alexanderramin/itinera/internal/catalog"
	"github.com/alexanderramin/itinera/internal/cli"
	"github.com/alexanderramin/itinera/internal/config"
	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/alexanderramin/itinera/internal/service"
	"github.com/alexanderramin/itinera/internal/travel"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	tripRepo := repository.NewSQLiteTripRepo(database)
	catalogRepo := repository.NewSQLiteCatalogRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	catalogSvc := service.NewCatalogService(catalogRepo, uow, observers...)
	if err := seedCatalog(context.Background(), catalogSvc, cfg.CatalogPath); err != nil {
		return err
	}

	a := &cli.App{
		Trips:   service.NewTripService(tripRepo, catalogRepo, uow, observers...),
		Edits:   service.NewEditService(tripRepo, catalogRepo, uow, observers...),
		Travel:  service.NewTravelService(tripRepo, catalogRepo, travel.NewMockSupplier(), uow, observers...),
		Costs:   service.NewCostService(tripRepo),
		Catalog: catalogSvc,
		Config:  cfg,
	}

	a.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(a).ExecuteContext(context.Background())
}

// seedCatalog fills an empty catalog from path, or from the bundled sample
// when no path is configured.
func seedCatalog(ctx context.Context, svc app.CatalogUseCase, path string) error {
	cities, err := svc.Cities(ctx)
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}
	if len(cities) > 0 {
		return nil
	}

	var res *app.ImportResult
	if path != "" {
		res, err = svc.Import(ctx, path)
	} else {
		var f catalog.File
		if f, err = catalog.Sample(); err == nil {
			res, err = svc.ImportFile(ctx, f)
		}
	}
	if err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	slog.Debug("catalog seeded", "cities", res.Cities, "pois", res.POIs, "source", path)
	return nil
}
