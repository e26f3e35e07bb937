package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/variants/internal/variant"
)

// Palette holds the colours used for button swatches.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	OnPrimary lipgloss.Color
}

// DefaultPalette returns the palette used by the CLI.
func DefaultPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("33"),
		Secondary: lipgloss.Color("245"),
		OnPrimary: lipgloss.Color("231"),
	}
}

// Renderer turns resolved button variants into terminal swatches. Its input is
// assumed to come from a registry and is not checked again.
type Renderer struct {
	palette Palette
}

// NewRenderer creates a renderer using palette.
func NewRenderer(palette Palette) *Renderer {
	return &Renderer{palette: palette}
}

// Button renders a single button.
func (r *Renderer) Button(label string, v variant.ButtonVariant) string {
	return r.buttonStyle(v).Render(label)
}

// Group renders buttons laid out along the variant's orientation.
func (r *Renderer) Group(v variant.ButtonVariant, labels ...string) string {
	rendered := make([]string, 0, len(labels))
	for _, label := range labels {
		rendered = append(rendered, r.Button(label, v))
	}

	if v.Orientation == variant.OrientationVertical {
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// Configuration renders a group from a resolved configuration.
func (r *Renderer) Configuration(cfg variant.ResolvedConfiguration, labels ...string) (string, error) {
	v, err := variant.ButtonVariantOf(cfg)
	if err != nil {
		return "", err
	}
	return r.Group(v, labels...), nil
}

func (r *Renderer) buttonStyle(v variant.ButtonVariant) lipgloss.Style {
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())

	switch v.Type {
	case variant.TypeSecondary:
		style = style.
			Foreground(r.palette.Secondary).
			BorderForeground(r.palette.Secondary)
	default:
		style = style.
			Bold(true).
			Foreground(r.palette.OnPrimary).
			Background(r.palette.Primary).
			BorderForeground(r.palette.Primary)
	}

	switch v.Size {
	case variant.SizeSmall:
		style = style.Padding(0, 1)
	case variant.SizeLarge:
		style = style.Padding(1, 3)
	default:
		style = style.Padding(0, 2)
	}

	return style
}
