package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse <trip-id>",
		Short: "Page through a trip's days and variants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("browse needs a terminal; use `itinera trip show` instead")
			}
			trip, err := app.Trips.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(newBrowseModel(cmd.Context(), app, trip),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			_, err = p.Run()
			return err
		},
	}
}
