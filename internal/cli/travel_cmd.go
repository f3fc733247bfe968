package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/spf13/cobra"
)

func newTravelCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "travel",
		Short: "Compare and pick travel offers for a trip",
	}
	cmd.AddCommand(
		newTravelOffersCmd(app),
		newTravelChooseCmd(app),
	)
	return cmd
}

func newTravelOffersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "offers <trip-id>",
		Short: "List offers for the trip's travel modes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := app.Trips.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			offers, err := app.Travel.Offers(cmd.Context(), trip.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOffers(offers, trip.ChosenTravel))
			return nil
		},
	}
}

func newTravelChooseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "choose <trip-id> <mode> <n>",
		Short: "Pick offer n (one-based) for a mode",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := domain.TravelMode(strings.ToLower(args[1]))
			idx, err := positiveIndex(args[2], "offer")
			if err != nil {
				return err
			}
			trip, err := app.Travel.Choose(cmd.Context(), args[0], mode, idx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatChosen(mode, trip.ChosenTravel[mode]))
			return nil
		},
	}
}
