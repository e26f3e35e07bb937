package picker

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/variants/internal/variant"
)

type axisState struct {
	name       string
	values     []string
	selected   int
	defaultIdx int
}

func (a axisState) value() string {
	return a.values[a.selected]
}

// Model is the Bubble Tea state of the variant picker: one row per axis, one
// selected value per row.
type Model struct {
	title     string
	axes      []axisState
	cursor    int
	keys      keyMap
	help      help.Model
	done      bool
	cancelled bool
}

// NewModel builds a picker over every axis of r, starting from the defaults.
func NewModel(r *variant.Registry, title string) (Model, error) {
	m := Model{title: title, keys: defaultKeyMap(), help: help.New()}

	for _, axis := range r.Axes() {
		seq, err := r.LegalValuesOf(axis.Name())
		if err != nil {
			return Model{}, err
		}
		values := slices.Collect(seq)
		idx := slices.Index(values, axis.Default())
		m.axes = append(m.axes, axisState{name: axis.Name(), values: values, selected: idx, defaultIdx: idx})
	}

	return m, nil
}

// Init starts the Bubble Tea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Done reports whether the user confirmed a selection.
func (m Model) Done() bool {
	return m.done
}

// Cancelled reports whether the user aborted the picker.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Request returns the selections that differ from the axis defaults, ready to
// be passed to Registry.Resolve.
func (m Model) Request() map[string]string {
	req := make(map[string]string)
	for _, axis := range m.axes {
		if axis.selected != axis.defaultIdx {
			req[axis.name] = axis.value()
		}
	}
	return req
}

// Selection returns the currently selected value of every axis.
func (m Model) Selection() map[string]string {
	out := make(map[string]string, len(m.axes))
	for _, axis := range m.axes {
		out[axis.name] = axis.value()
	}
	return out
}
