package cli

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/catalog"
	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/planner"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the destination catalog",
	}
	cmd.AddCommand(
		newCatalogImportCmd(app),
		newCatalogSampleCmd(app),
		newCatalogCitiesCmd(app),
		newCatalogListCmd(app),
	)
	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import destinations from a JSON or YAML catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Catalog.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
}

func newCatalogSampleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Import the bundled sample catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := catalog.Sample()
			if err != nil {
				return err
			}
			res, err := app.Catalog.ImportFile(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
}

func newCatalogCitiesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "cities",
		Aliases: []string{"ls"},
		Short:   "List catalog destinations",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cities, err := app.Catalog.Cities(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCityList(cities))
			return nil
		},
	}
}

func newCatalogListCmd(app *App) *cobra.Command {
	var (
		themes []string
		mood   float64
	)
	cmd := &cobra.Command{
		Use:   "list <city>",
		Short: "List a destination's points of interest",
		Long: `List a destination's points of interest in catalog order.

With --themes or --mood the list is ranked the way the planner ranks it,
with the factors behind each score.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			city, err := app.Catalog.City(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("themes") || cmd.Flags().Changed("mood") {
				ranked := planner.Rank(city.POIs, planner.NewThemeSet(splitCSV(themes)...), mood)
				fmt.Fprintln(out, formatter.FormatRankedPOIs(city, ranked))
				return nil
			}
			fmt.Fprintln(out, formatter.FormatPOIList(city))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&themes, "themes", nil, "Rank for these preferred themes (comma-separated)")
	cmd.Flags().Float64Var(&mood, "mood", 5, "Rank for this mood, 0-10")
	return cmd
}
