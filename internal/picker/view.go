package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	title := m.title
	if strings.TrimSpace(title) == "" {
		title = "Variants"
	}
	sections = append(sections, titleStyle.Render(title))

	for i, axis := range m.axes {
		sections = append(sections, m.renderAxis(i, axis))
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderAxis(i int, axis axisState) string {
	marker := "  "
	name := axisStyle.Render(axis.name)
	if i == m.cursor {
		marker = focusStyle.Render("> ")
		name = focusStyle.Inherit(axisStyle).Render(axis.name)
	}

	values := make([]string, 0, len(axis.values))
	for j, v := range axis.values {
		if j == axis.selected {
			values = append(values, selectedStyle.Render("["+v+"]"))
			continue
		}
		values = append(values, valueStyle.Render(" "+v+" "))
	}

	return marker + name + strings.Join(values, " ")
}
