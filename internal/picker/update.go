package picker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubble Tea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		m.done = true
		return m, tea.Quit
	}

	if len(m.axes) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.axes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Next):
		m.shift(1)
	case key.Matches(msg, m.keys.Prev):
		m.shift(-1)
	case key.Matches(msg, m.keys.Reset):
		m.selectValue(m.axes[m.cursor].defaultIdx)
	}
	return m, nil
}

// shift moves the selection of the focused axis, wrapping around.
func (m *Model) shift(delta int) {
	axis := m.axes[m.cursor]
	n := len(axis.values)
	m.selectValue(((axis.selected+delta)%n + n) % n)
}

// selectValue replaces the axes slice so earlier model values keep their state.
func (m *Model) selectValue(idx int) {
	axes := make([]axisState, len(m.axes))
	copy(axes, m.axes)
	axes[m.cursor].selected = idx
	m.axes = axes
}
