package variant

import (
	varerrors "github.com/alexisbeaulieu97/variants/pkg/errors"
)

// Axis names of the button vocabulary.
const (
	AxisType        = "type"
	AxisSize        = "size"
	AxisOrientation = "orientation"
)

// ButtonType is the visual emphasis of a button.
type ButtonType string

const (
	TypePrimary   ButtonType = "primary"
	TypeSecondary ButtonType = "secondary"
)

// ButtonSize is the physical size of a button.
type ButtonSize string

const (
	SizeLarge  ButtonSize = "large"
	SizeMedium ButtonSize = "medium"
	SizeSmall  ButtonSize = "small"
)

// Orientation is the layout direction of a button composed with siblings.
type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

// ButtonTypes lists the button types in definition order.
func ButtonTypes() []ButtonType {
	return []ButtonType{TypePrimary, TypeSecondary}
}

// ButtonSizes lists the button sizes in definition order.
func ButtonSizes() []ButtonSize {
	return []ButtonSize{SizeLarge, SizeMedium, SizeSmall}
}

// Orientations lists the orientations in definition order.
func Orientations() []Orientation {
	return []Orientation{OrientationHorizontal, OrientationVertical}
}

// Valid reports whether t is a known button type.
func (t ButtonType) Valid() bool {
	switch t {
	case TypePrimary, TypeSecondary:
		return true
	default:
		return false
	}
}

func (t ButtonType) String() string {
	return string(t)
}

// Valid reports whether s is a known button size.
func (s ButtonSize) Valid() bool {
	switch s {
	case SizeLarge, SizeMedium, SizeSmall:
		return true
	default:
		return false
	}
}

func (s ButtonSize) String() string {
	return string(s)
}

// Valid reports whether o is a known orientation.
func (o Orientation) Valid() bool {
	switch o {
	case OrientationHorizontal, OrientationVertical:
		return true
	default:
		return false
	}
}

func (o Orientation) String() string {
	return string(o)
}

// ButtonVariant is the typed view of a resolved button configuration. Zero
// fields in a request mean "use the default".
type ButtonVariant struct {
	Type        ButtonType
	Size        ButtonSize
	Orientation Orientation
}

// DefaultButtonVariant returns the variant produced by an empty request.
func DefaultButtonVariant() ButtonVariant {
	return ButtonVariant{Type: TypePrimary, Size: SizeMedium, Orientation: OrientationHorizontal}
}

// Request converts the set fields into a resolution request.
func (v ButtonVariant) Request() map[string]string {
	req := make(map[string]string, 3)
	if v.Type != "" {
		req[AxisType] = string(v.Type)
	}
	if v.Size != "" {
		req[AxisSize] = string(v.Size)
	}
	if v.Orientation != "" {
		req[AxisOrientation] = string(v.Orientation)
	}
	return req
}

// DefineButtonAxes registers the type, size and orientation axes on r.
func DefineButtonAxes(r *Registry) error {
	if err := r.DefineAxis(AxisType, tokens(ButtonTypes()), string(TypePrimary)); err != nil {
		return err
	}
	if err := r.DefineAxis(AxisSize, tokens(ButtonSizes()), string(SizeMedium)); err != nil {
		return err
	}
	return r.DefineAxis(AxisOrientation, tokens(Orientations()), string(OrientationHorizontal))
}

// NewButtonRegistry returns a frozen registry holding the button vocabulary.
func NewButtonRegistry(opts ...Option) (*Registry, error) {
	r := NewRegistry(opts...)
	if err := DefineButtonAxes(r); err != nil {
		return nil, err
	}
	r.Freeze()
	return r, nil
}

// ResolveButton resolves v against r and returns the fully populated variant.
func ResolveButton(r *Registry, v ButtonVariant) (ButtonVariant, error) {
	cfg, err := r.Resolve(v.Request())
	if err != nil {
		return ButtonVariant{}, err
	}
	return ButtonVariantOf(cfg)
}

// ButtonVariantOf converts a resolved configuration into typed button values.
// It fails when cfg was resolved by a registry lacking a button axis or
// carrying tokens outside the button vocabulary.
func ButtonVariantOf(cfg ResolvedConfiguration) (ButtonVariant, error) {
	typ, err := typedValue(cfg, AxisType, ButtonTypes())
	if err != nil {
		return ButtonVariant{}, err
	}
	size, err := typedValue(cfg, AxisSize, ButtonSizes())
	if err != nil {
		return ButtonVariant{}, err
	}
	orientation, err := typedValue(cfg, AxisOrientation, Orientations())
	if err != nil {
		return ButtonVariant{}, err
	}
	return ButtonVariant{Type: typ, Size: size, Orientation: orientation}, nil
}

func typedValue[T ~string](cfg ResolvedConfiguration, axis string, legal []T) (T, error) {
	value, ok := cfg.Get(axis)
	if !ok {
		return "", varerrors.NewUnknownAxisError(axis)
	}
	for _, candidate := range legal {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", varerrors.NewInvalidValueError(axis, value, tokens(legal))
}

func tokens[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
