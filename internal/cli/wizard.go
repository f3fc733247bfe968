package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/itinera/internal/app"
	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/config"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// itineraHuhTheme returns a huh theme using the Gruvbox palette.
func itineraHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planAnswers holds the raw wizard fields before they become a TripRequest.
type planAnswers struct {
	origin      string
	destination string
	start       string
	end         string
	budget      string
	party       string
	themes      []string
	mood        string
	modes       []string
	variants    string
	sequence    string
}

func (a planAnswers) request(cfg config.Config) (app.TripRequest, error) {
	start, err := parseDate(a.start)
	if err != nil {
		return app.TripRequest{}, err
	}
	end := start
	if strings.TrimSpace(a.end) != "" {
		if end, err = parseDate(a.end); err != nil {
			return app.TripRequest{}, err
		}
	}
	budget, err := strconv.ParseFloat(strings.TrimSpace(a.budget), 64)
	if err != nil {
		return app.TripRequest{}, fmt.Errorf("invalid budget %q", a.budget)
	}
	variants := cfg.Variants
	if strings.TrimSpace(a.variants) != "" {
		if variants, err = strconv.Atoi(strings.TrimSpace(a.variants)); err != nil {
			return app.TripRequest{}, fmt.Errorf("invalid variant count %q", a.variants)
		}
	}

	req := app.NewTripRequest(a.destination, start, end, budget, variants)
	req.Origin = strings.TrimSpace(a.origin)
	req.StartHour = cfg.DayHours.StartHour
	req.EndHour = cfg.DayHours.EndHour
	req.Themes = a.themes
	req.Sequence = a.sequence
	if strings.TrimSpace(a.party) != "" {
		if req.PartySize, err = strconv.Atoi(strings.TrimSpace(a.party)); err != nil {
			return app.TripRequest{}, fmt.Errorf("invalid party size %q", a.party)
		}
	}
	if strings.TrimSpace(a.mood) != "" {
		if req.Mood, err = strconv.ParseFloat(strings.TrimSpace(a.mood), 64); err != nil {
			return app.TripRequest{}, fmt.Errorf("invalid mood %q", a.mood)
		}
	}
	for _, m := range a.modes {
		req.Modes = append(req.Modes, domain.TravelMode(m))
	}
	return req, nil
}

// planForm builds the interactive trip form. Destinations come from the
// catalog so only plannable cities can be picked.
func planForm(cities []string, a *planAnswers) *huh.Form {
	destOptions := huh.NewOptions(cities...)
	themeOptions := huh.NewOptions(domain.KnownThemes...)
	modeOptions := []huh.Option[string]{
		huh.NewOption("Flight", string(domain.ModeFlight)),
		huh.NewOption("Train", string(domain.ModeTrain)),
		huh.NewOption("Bus", string(domain.ModeBus)),
		huh.NewOption("Cab", string(domain.ModeCab)),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Where to?").Options(destOptions...).Value(&a.destination),
			huh.NewInput().Title("Travelling from").Placeholder("Hyderabad").Value(&a.origin),
			huh.NewInput().Title("Start date").Placeholder("2025-03-01").Value(&a.start).Validate(validateRequiredDate),
			huh.NewInput().Title("End date (blank for a day trip)").Placeholder("2025-03-03").Value(&a.end).Validate(validateOptionalDate),
		),
		huh.NewGroup(
			huh.NewInput().Title("Activity budget").Placeholder("6000").Value(&a.budget).Validate(validatePositiveNumber),
			huh.NewInput().Title("Travellers").Placeholder("1").Value(&a.party).Validate(validateOptionalPositiveInt),
			huh.NewMultiSelect[string]().Title("Themes").Options(themeOptions...).Value(&a.themes),
			huh.NewInput().Title("Mood (0 quiet, 10 buzzing)").Placeholder("5").Value(&a.mood).Validate(validateMood),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Quote travel by").Options(modeOptions...).Value(&a.modes),
			huh.NewInput().Title("Variants").Placeholder("3").Value(&a.variants).Validate(validateOptionalPositiveInt),
			huh.NewSelect[string]().Title("Order each day by").Options(
				huh.NewOption("Pick order", string(domain.SequenceIdentity)),
				huh.NewOption("Shortest walk", string(domain.SequenceProximity)),
			).Value(&a.sequence),
		),
	).WithTheme(itineraHuhTheme()).WithShowHelp(false)
}

func runPlanWizard(ctx context.Context, a *App) (app.TripRequest, error) {
	summaries, err := a.Catalog.Cities(ctx)
	if err != nil {
		return app.TripRequest{}, err
	}
	if len(summaries) == 0 {
		return app.TripRequest{}, errors.New("catalog is empty; run `itinera catalog sample` first")
	}
	cities := make([]string, len(summaries))
	for i, c := range summaries {
		cities[i] = c.Name
	}

	answers := planAnswers{sequence: string(domain.SequenceIdentity)}
	if err := planForm(cities, &answers).RunWithContext(ctx); err != nil {
		return app.TripRequest{}, err
	}
	return answers.request(a.Config)
}

func validateRequiredDate(s string) error {
	_, err := parseDate(s)
	return err
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validateRequiredDate(s)
}

func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return errors.New("enter a number above zero")
	}
	return nil
}

func validateOptionalPositiveInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return errors.New("enter a whole number of 1 or more")
	}
	return nil
}

func validateMood(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || v > 10 {
		return errors.New("mood is between 0 and 10")
	}
	return nil
}

// confirm asks a yes/no question; it returns def without asking when stdin
// is not a terminal.
func confirm(a *App, title string, def bool) (bool, error) {
	if !a.interactive() {
		return def, nil
	}
	ok := def
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Affirmative("Yes").Negative("No").Value(&ok),
	)).WithTheme(itineraHuhTheme()).WithShowHelp(false).Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}
