package cli

import (
	"time"

	"github.com/alexanderramin/itinera/internal/app"
	"github.com/alexanderramin/itinera/internal/config"
	"github.com/spf13/cobra"
)

// App holds references to all use cases used by CLI commands.
type App struct {
	Trips   app.TripUseCase
	Edits   app.EditUseCase
	Travel  app.TravelUseCase
	Costs   app.CostUseCase
	Catalog app.CatalogUseCase

	Config config.Config

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Now is the clock used for relative timestamps. Nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "itinera" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "itinera",
		Short:         "Seeded, budget-aware trip itinerary planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCatalogCmd(app),
		newPlanCmd(app),
		newTripCmd(app),
		newVariantCmd(app),
		newEditCmd(app),
		newTravelCmd(app),
		newCostsCmd(app),
		newCheckoutCmd(app),
		newBrowseCmd(app),
	)

	return root
}
