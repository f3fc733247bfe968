package cli

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCostsCmd(app *App) *cobra.Command {
	var day int
	cmd := &cobra.Command{
		Use:   "costs <trip-id>",
		Short: "Show spend per day, travel and the total against budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("day") {
				idx, err := dayFlag(day)
				if err != nil {
					return err
				}
				q, err := app.Costs.Quote(cmd.Context(), args[0], idx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatQuote(q))
				return nil
			}

			trip, err := app.Trips.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cb, err := app.Costs.Costs(cmd.Context(), trip.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCosts(cb, trip.Budget))
			return nil
		},
	}
	cmd.Flags().IntVar(&day, "day", 0, "Quote a single day (one-based) with tax")
	return cmd
}

func newCheckoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <trip-id>",
		Short: "Show the bill for chosen travel and activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bill, err := app.Costs.Bill(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBill(bill))
			return nil
		},
	}
}
