package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/app"
	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/planner"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type browseKeyMap struct {
	PrevDay       key.Binding
	NextDay       key.Binding
	Up            key.Binding
	Down          key.Binding
	Remove        key.Binding
	PrevVariant   key.Binding
	NextVariant   key.Binding
	Duplicate     key.Binding
	DeleteVariant key.Binding
	Costs         key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		PrevDay:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev activity")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next activity")),
		Remove:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "remove activity")),
		PrevVariant:   key.NewBinding(key.WithKeys("p", "["), key.WithHelp("p", "prev variant")),
		NextVariant:   key.NewBinding(key.WithKeys("n", "]"), key.WithHelp("n", "next variant")),
		Duplicate:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "duplicate")),
		DeleteVariant: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete variant")),
		Costs:         key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "costs")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.NextVariant, k.Costs, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.Up, k.Down, k.Remove},
		{k.PrevVariant, k.NextVariant, k.Duplicate, k.DeleteVariant},
		{k.Costs, k.Help, k.Quit},
	}
}

// tripLoadedMsg carries a trip after a variant change.
type tripLoadedMsg struct {
	trip *domain.Trip
	err  error
}

type activityRemovedMsg struct {
	name   string
	result *app.EditResult
	err    error
}

type costsLoadedMsg struct {
	costs planner.CostBreakdown
	err   error
}

// browseModel pages through the days of a trip's current variant.
type browseModel struct {
	ctx  context.Context
	app  *App
	trip *domain.Trip

	day       int
	cursor    int
	showCosts bool
	costs     *planner.CostBreakdown
	status    string

	keys browseKeyMap
	help help.Model
	vp   viewport.Model

	width  int
	height int
}

func newBrowseModel(ctx context.Context, app *App, trip *domain.Trip) browseModel {
	m := browseModel{
		ctx:    ctx,
		app:    app,
		trip:   trip,
		keys:   defaultBrowseKeys(),
		help:   help.New(),
		vp:     viewport.New(80, 20),
		width:  80,
		height: 24,
	}
	m.refresh()
	return m
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-4, 3)
		m.refresh()
		return m, nil

	case tripLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.trip = msg.trip
		m.costs = nil
		m.showCosts = false
		if m.day >= len(m.variant().Days) {
			m.day = len(m.variant().Days) - 1
		}
		m.cursor = 0
		m.status = fmt.Sprintf("variant %d of %d", m.trip.Itineraries.Current+1, m.trip.Itineraries.Len())
		m.refresh()
		return m, nil

	case activityRemovedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.trip = msg.result.Trip
		m.costs = nil
		m.clampCursor()
		m.status = "removed " + msg.name
		if n := msg.result.Outcome.Dropped; n > 0 {
			m.status += fmt.Sprintf(", %d no longer fit", n)
		}
		m.refresh()
		return m, nil

	case costsLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.costs = &msg.costs
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.PrevDay):
			if m.day > 0 {
				m.day--
				m.cursor = 0
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.NextDay):
			if m.day < len(m.variant().Days)-1 {
				m.day++
				m.cursor = 0
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.activities())-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Remove):
			return m, m.removeActivity()
		case key.Matches(msg, m.keys.DeleteVariant):
			return m, m.deleteVariant()
		case key.Matches(msg, m.keys.NextVariant):
			return m, m.selectVariant(m.trip.Itineraries.Current + 1)
		case key.Matches(msg, m.keys.PrevVariant):
			return m, m.selectVariant(m.trip.Itineraries.Current - 1)
		case key.Matches(msg, m.keys.Duplicate):
			return m, m.duplicate()
		case key.Matches(msg, m.keys.Costs):
			m.showCosts = !m.showCosts
			m.refresh()
			if m.showCosts && m.costs == nil {
				return m, m.loadCosts()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	if acts := m.activities(); !m.showCosts && len(acts) > 0 {
		fmt.Fprintf(&b, "%s %s\n", formatter.StyleHeader.Render("›"), acts[m.cursor].Name)
	}
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(formatter.Dim(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m browseModel) header() string {
	return fmt.Sprintf("%s  %s  %s",
		formatter.StyleHeader.Render(strings.ToUpper(m.trip.Destination)),
		formatter.Dim(fmt.Sprintf("variant %d/%d", m.trip.Itineraries.Current+1, m.trip.Itineraries.Len())),
		formatter.Dim(fmt.Sprintf("day %d/%d", m.day+1, len(m.variant().Days))),
	)
}

func (m *browseModel) variant() *domain.Itinerary {
	return m.trip.Itineraries.CurrentVariant()
}

func (m browseModel) activities() []domain.ScheduledActivity {
	days := m.trip.Itineraries.CurrentVariant().Days
	if m.day >= len(days) {
		return nil
	}
	return days[m.day].Activities
}

func (m *browseModel) clampCursor() {
	if m.day >= len(m.variant().Days) {
		m.day = max(len(m.variant().Days)-1, 0)
	}
	if n := len(m.activities()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

// refresh renders the current page into the viewport.
func (m *browseModel) refresh() {
	switch {
	case m.showCosts && m.costs != nil:
		m.vp.SetContent(formatter.FormatCosts(*m.costs, m.trip.Budget))
	case m.showCosts:
		m.vp.SetContent(formatter.Dim("Loading costs…"))
	default:
		days := m.variant().Days
		if len(days) == 0 {
			m.vp.SetContent(formatter.Dim("No days."))
			return
		}
		m.vp.SetContent(formatter.FormatDay(m.day, days[m.day]))
	}
	m.vp.GotoTop()
}

func (m browseModel) selectVariant(i int) tea.Cmd {
	n := m.trip.Itineraries.Len()
	if n < 2 {
		return nil
	}
	i = (i + n) % n
	ctx, trips, id := m.ctx, m.app.Trips, m.trip.ID
	return func() tea.Msg {
		t, err := trips.SelectVariant(ctx, id, i)
		return tripLoadedMsg{trip: t, err: err}
	}
}

func (m browseModel) duplicate() tea.Cmd {
	ctx, trips, id := m.ctx, m.app.Trips, m.trip.ID
	return func() tea.Msg {
		t, err := trips.DuplicateVariant(ctx, id)
		return tripLoadedMsg{trip: t, err: err}
	}
}

func (m browseModel) deleteVariant() tea.Cmd {
	ctx, trips, id := m.ctx, m.app.Trips, m.trip.ID
	return func() tea.Msg {
		t, err := trips.DeleteVariant(ctx, id)
		return tripLoadedMsg{trip: t, err: err}
	}
}

func (m browseModel) removeActivity() tea.Cmd {
	acts := m.activities()
	if len(acts) == 0 {
		return nil
	}
	ctx, edits, id, day, name := m.ctx, m.app.Edits, m.trip.ID, m.day, acts[m.cursor].Name
	return func() tea.Msg {
		res, err := edits.Remove(ctx, id, day, []string{name})
		return activityRemovedMsg{name: name, result: res, err: err}
	}
}

func (m browseModel) loadCosts() tea.Cmd {
	ctx, costs, id := m.ctx, m.app.Costs, m.trip.ID
	return func() tea.Msg {
		cb, err := costs.Costs(ctx, id)
		return costsLoadedMsg{costs: cb, err: err}
	}
}
