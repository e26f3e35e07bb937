package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/variants/internal/variant"
	varerrors "github.com/alexisbeaulieu97/variants/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadDefinitions reads a definition file from disk and validates it.
func LoadDefinitions(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, varerrors.NewParseError(path, 0, err)
	}
	return ParseDefinitions(data, path)
}

// ParseDefinitions decodes and validates a definition document. source is only
// used for diagnostics.
func ParseDefinitions(data []byte, source string) (*Definitions, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var defs Definitions
	if err := decoder.Decode(&defs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, varerrors.NewParseError(source, 0, errors.New("document is empty"))
		}
		return nil, varerrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateDefinitions(&defs); err != nil {
		return nil, err
	}

	return &defs, nil
}

// ValidateDefinitions performs the schema checks that do not need a registry.
func ValidateDefinitions(defs *Definitions) error {
	if defs == nil {
		return varerrors.NewValidationError("definitions", "definitions are nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(defs))
}

// Apply defines every axis of defs on r, in file order. Registry errors keep
// their ConfigurationError kind and are prefixed with the offending field.
func Apply(r *variant.Registry, defs *Definitions) error {
	if defs == nil {
		return varerrors.NewValidationError("definitions", "definitions are nil", nil)
	}
	for i, axis := range defs.Axes {
		if err := r.DefineAxis(axis.Name, axis.Values, axis.EffectiveDefault()); err != nil {
			return fmt.Errorf("%s: %w", fieldForAxis(i, rejectedField(axis, err)), err)
		}
	}
	return nil
}

// Check reports whether defs would be accepted by a registry.
func Check(defs *Definitions) error {
	_, err := NewRegistry(defs)
	return err
}

func rejectedField(axis AxisDefinition, err error) string {
	var cfgErr *varerrors.ConfigurationError
	if !errors.As(err, &cfgErr) {
		return "name"
	}
	switch cfgErr.Kind {
	case varerrors.KindInvalidDefault:
		return "default"
	case varerrors.KindEmptyLegalSet, varerrors.KindDuplicateValue:
		return "values"
	case varerrors.KindInvalidName:
		if variant.ValidateAxisName(axis.Name) == nil {
			return "values"
		}
	}
	return "name"
}

// NewRegistry builds a frozen registry from defs.
func NewRegistry(defs *Definitions, opts ...variant.Option) (*variant.Registry, error) {
	r := variant.NewRegistry(opts...)
	if err := Apply(r, defs); err != nil {
		return nil, err
	}
	r.Freeze()
	return r, nil
}

// FromRegistry exports the axes of r as definitions.
func FromRegistry(r *variant.Registry) *Definitions {
	axes := r.Axes()
	defs := &Definitions{Version: DefinitionsVersion, Axes: make([]AxisDefinition, 0, len(axes))}
	for _, axis := range axes {
		defs.Axes = append(defs.Axes, AxisDefinition{
			Name:    axis.Name(),
			Values:  axis.Values(),
			Default: axis.Default(),
		})
	}
	return defs
}

// Encode renders defs as canonical YAML with explicit defaults.
func Encode(defs *Definitions) ([]byte, error) {
	if defs == nil {
		return nil, varerrors.NewValidationError("definitions", "definitions are nil", nil)
	}

	canonical := Definitions{Version: defs.Version, Axes: make([]AxisDefinition, len(defs.Axes))}
	for i, axis := range defs.Axes {
		axis.Default = axis.EffectiveDefault()
		canonical.Axes[i] = axis
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(canonical); err != nil {
		return nil, fmt.Errorf("encode definitions: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode definitions: %w", err)
	}
	return buf.Bytes(), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
