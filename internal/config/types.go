package config

// DefinitionsVersion is the only definition file version understood.
const DefinitionsVersion = 1

// Definitions is the on-disk description of a set of axes.
type Definitions struct {
	Version int              `yaml:"version" validate:"required,eq=1"`
	Axes    []AxisDefinition `yaml:"axes" validate:"required,min=1,dive"`
}

// AxisDefinition declares one axis. An empty Default selects the first value.
type AxisDefinition struct {
	Name        string   `yaml:"name" validate:"required,axis_name"`
	Description string   `yaml:"description,omitempty"`
	Values      []string `yaml:"values" validate:"dive,token"`
	Default     string   `yaml:"default,omitempty" validate:"omitempty,token"`
}

// EffectiveDefault returns the declared default or the first listed value.
func (a AxisDefinition) EffectiveDefault() string {
	if a.Default != "" || len(a.Values) == 0 {
		return a.Default
	}
	return a.Values[0]
}

// Axis returns the definition with the given name.
func (d *Definitions) Axis(name string) (AxisDefinition, bool) {
	if d == nil {
		return AxisDefinition{}, false
	}
	for _, axis := range d.Axes {
		if axis.Name == name {
			return axis, true
		}
	}
	return AxisDefinition{}, false
}
