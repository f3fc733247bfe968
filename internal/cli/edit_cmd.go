package cli

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/app"
	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a day of the current variant",
	}
	cmd.AddCommand(
		newEditSwapCmd(app),
		newEditAddCmd(app),
		newEditRemoveCmd(app),
		newEditAlternativesCmd(app),
	)
	return cmd
}

func printEdit(cmd *cobra.Command, day int, res *app.EditResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.FormatEditOutcome(day, res.Outcome))
	if res.Outcome.Applied {
		d := res.Trip.Itineraries.CurrentVariant().Days[day]
		fmt.Fprintln(out, formatter.FormatDay(day, d))
	}
}

func newEditSwapCmd(app *App) *cobra.Command {
	var day int
	var outName, inName string
	cmd := &cobra.Command{
		Use:   "swap <trip-id>",
		Short: "Replace one activity with another catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := dayFlag(day)
			if err != nil {
				return err
			}
			res, err := app.Edits.Swap(cmd.Context(), args[0], idx, outName, inName)
			if err != nil {
				return err
			}
			printEdit(cmd, idx, res)
			return nil
		},
	}
	cmd.Flags().IntVar(&day, "day", 1, "Day number (one-based)")
	cmd.Flags().StringVar(&outName, "out", "", "Activity to take out")
	cmd.Flags().StringVar(&inName, "in", "", "Catalog entry to put in")
	_ = cmd.MarkFlagRequired("out")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func newEditAddCmd(app *App) *cobra.Command {
	var day int
	var name string
	cmd := &cobra.Command{
		Use:   "add <trip-id>",
		Short: "Append a catalog entry to a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := dayFlag(day)
			if err != nil {
				return err
			}
			res, err := app.Edits.Add(cmd.Context(), args[0], idx, name)
			if err != nil {
				return err
			}
			printEdit(cmd, idx, res)
			return nil
		},
	}
	cmd.Flags().IntVar(&day, "day", 1, "Day number (one-based)")
	cmd.Flags().StringVar(&name, "poi", "", "Catalog entry to add")
	_ = cmd.MarkFlagRequired("poi")
	return cmd
}

func newEditRemoveCmd(app *App) *cobra.Command {
	var day int
	var names []string
	cmd := &cobra.Command{
		Use:   "remove <trip-id>",
		Short: "Remove activities from a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := dayFlag(day)
			if err != nil {
				return err
			}
			res, err := app.Edits.Remove(cmd.Context(), args[0], idx, names)
			if err != nil {
				return err
			}
			printEdit(cmd, idx, res)
			return nil
		},
	}
	cmd.Flags().IntVar(&day, "day", 1, "Day number (one-based)")
	cmd.Flags().StringArrayVar(&names, "poi", nil, "Activity to remove (repeatable)")
	_ = cmd.MarkFlagRequired("poi")
	return cmd
}

func newEditAlternativesCmd(app *App) *cobra.Command {
	var day int
	cmd := &cobra.Command{
		Use:     "alternatives <trip-id>",
		Aliases: []string{"alts"},
		Short:   "List catalog entries not yet on a day",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := dayFlag(day)
			if err != nil {
				return err
			}
			pois, err := app.Edits.Alternatives(cmd.Context(), args[0], idx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAlternatives(idx, pois))
			return nil
		},
	}
	cmd.Flags().IntVar(&day, "day", 1, "Day number (one-based)")
	return cmd
}
