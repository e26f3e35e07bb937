package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestViewListsAxesAndSelection(t *testing.T) {
	t.Parallel()

	m := newButtonModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	out := m.View()

	require.Contains(t, out, "Button")
	require.Contains(t, out, "orientation")
	require.Contains(t, out, "[secondary]")
	require.Contains(t, out, "[medium]")
	require.Contains(t, out, "confirm")
}
