package cli

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTripCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "List, show and delete saved trips",
	}
	cmd.AddCommand(
		newTripListCmd(app),
		newTripShowCmd(app),
		newTripDeleteCmd(app),
	)
	return cmd
}

func newTripListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved trips, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := app.Trips.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTripList(trips, app.now()))
			return nil
		},
	}
}

func newTripShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <trip-id>",
		Short: "Show a trip's current variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := app.Trips.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTrip(trip))
			return nil
		},
	}
}

func newTripDeleteCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete <trip-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a trip and all its variants",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := app.Trips.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !yes {
				ok, err := confirm(app, fmt.Sprintf("Delete trip %s to %s?", trip.ShortID(), trip.Destination), true)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}
			if err := app.Trips.Delete(cmd.Context(), trip.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted trip %s\n", trip.ShortID())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
