package cli

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/spf13/cobra"
)

func newVariantCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variant",
		Short: "Switch between, copy and drop itinerary variants",
	}
	cmd.AddCommand(
		newVariantSelectCmd(app),
		newVariantDuplicateCmd(app),
		newVariantDeleteCmd(app),
	)
	return cmd
}

func printVariantState(cmd *cobra.Command, verb string, trip *domain.Trip) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: now on variant %d of %d\n",
		formatter.StyleGreen.Render("✔"), verb, trip.Itineraries.Current+1, trip.Itineraries.Len())
}

func newVariantSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <trip-id> <n>",
		Short: "Make variant n (one-based) current",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := positiveIndex(args[1], "variant")
			if err != nil {
				return err
			}
			trip, err := app.Trips.SelectVariant(cmd.Context(), args[0], idx)
			if err != nil {
				return err
			}
			printVariantState(cmd, "Selected", trip)
			return nil
		},
	}
}

func newVariantDuplicateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "duplicate <trip-id>",
		Aliases: []string{"dup"},
		Short:   "Copy the current variant and switch to the copy",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := app.Trips.DuplicateVariant(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printVariantState(cmd, "Duplicated", trip)
			return nil
		},
	}
}

func newVariantDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <trip-id>",
		Aliases: []string{"rm"},
		Short:   "Delete the current variant",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := app.Trips.DeleteVariant(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printVariantState(cmd, "Deleted", trip)
			return nil
		},
	}
}
