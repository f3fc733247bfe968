package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/app"
	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/spf13/cobra"
)

type planFlags struct {
	origin      string
	destination string
	start       time.Time
	end         time.Time
	budget      float64
	party       int
	themes      []string
	mood        float64
	modes       []string
	startHour   int
	endHour     int
	variants    int
	seed        int64
	sequence    string
	interactive bool
}

func newPlanCmd(a *App) *cobra.Command {
	f := planFlags{
		party:     1,
		mood:      5,
		startHour: a.Config.DayHours.StartHour,
		endHour:   a.Config.DayHours.EndHour,
		variants:  a.Config.Variants,
		sequence:  string(domain.SequenceIdentity),
	}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate itinerary variants for a trip",
		Long: `Generate itinerary variants for a destination in the catalog.

Each variant is reproducible from its seed: planning again with --seed
and the same inputs yields the same days.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req app.TripRequest
			if f.interactive {
				if !a.interactive() {
					return errors.New("--interactive needs a terminal")
				}
				var err error
				req, err = runPlanWizard(cmd.Context(), a)
				if err != nil {
					return err
				}
			} else {
				req = f.request(cmd.Flags().Changed("seed"))
			}

			trip, err := a.Trips.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatTrip(trip))
			fmt.Fprintf(out, "%s Planned trip %s with %d variant(s). Seed %d.\n",
				formatter.StyleGreen.Render("✔"), formatter.Bold(trip.ShortID()), trip.Itineraries.Len(), trip.BaseSeed)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.origin, "from", "", "Origin city")
	fl.StringVar(&f.destination, "to", "", "Destination city (must be in the catalog)")
	fl.Var(newDateValue(&f.start), "start", "First day of the trip (YYYY-MM-DD)")
	fl.Var(newDateValue(&f.end), "end", "Last day of the trip (YYYY-MM-DD, defaults to --start)")
	fl.Float64Var(&f.budget, "budget", 0, "Total activity budget")
	fl.IntVar(&f.party, "party", f.party, "Number of travellers")
	fl.StringSliceVar(&f.themes, "themes", nil, "Preferred themes (comma-separated)")
	fl.Float64Var(&f.mood, "mood", f.mood, "Mood 0-10; higher favors popular places")
	fl.StringSliceVar(&f.modes, "modes", nil, "Travel modes to quote: flight,train,bus,cab")
	fl.Var(newHourValue(f.startHour, &f.startHour), "start-hour", "Hour each day starts")
	fl.Var(newHourValue(f.endHour, &f.endHour), "end-hour", "Hour each day ends")
	fl.IntVar(&f.variants, "variants", f.variants, "Number of variants to generate")
	fl.Int64Var(&f.seed, "seed", 0, "Base seed; omit for a fresh one")
	fl.StringVar(&f.sequence, "sequence", f.sequence, "Day ordering: identity or proximity")
	fl.BoolVarP(&f.interactive, "interactive", "i", false, "Fill the request in a form")

	return cmd
}

func (f planFlags) request(seedSet bool) app.TripRequest {
	end := f.end
	if end.IsZero() {
		end = f.start
	}
	req := app.NewTripRequest(f.destination, f.start, end, f.budget, f.variants)
	req.Origin = f.origin
	req.PartySize = f.party
	req.Themes = splitCSV(f.themes)
	req.Mood = f.mood
	for _, m := range splitCSV(f.modes) {
		req.Modes = append(req.Modes, domain.TravelMode(m))
	}
	req.StartHour = f.startHour
	req.EndHour = f.endHour
	req.Sequence = f.sequence
	if seedSet {
		seed := f.seed
		req.Seed = &seed
	}
	return req
}
