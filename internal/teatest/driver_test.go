package teatest

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type countMsg int

// counter increments on "+", asks for an async bump on "b" and quits on "q".
type counter struct {
	n     int
	sized bool
}

func (c counter) Init() tea.Cmd {
	return func() tea.Msg { return countMsg(10) }
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.sized = true
	case countMsg:
		c.n += int(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "+":
			c.n++
		case "b":
			return c, tea.Batch(
				func() tea.Msg { return countMsg(1) },
				func() tea.Msg { return countMsg(2) },
			)
		case "q":
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string {
	return fmt.Sprintf("\x1b[1mcount %d\x1b[0m", c.n)
}

func TestDriver(t *testing.T) {
	d := New(t, counter{}, WithSize(80, 24))

	assert.True(t, d.Model.(counter).sized)
	assert.Equal(t, 10, d.Model.(counter).n, "Init command is drained")

	d.PressKey('+')
	d.PressKey('b')
	assert.Equal(t, 14, d.Model.(counter).n)
	assert.Equal(t, "count 14", d.PlainView())
	assert.Len(t, d.Msgs, 3)

	d.PressKey('q')
	assert.True(t, d.Quitting)
	d.PressKey('+')
	assert.Equal(t, 14, d.Model.(counter).n, "input after quit is ignored")
}
