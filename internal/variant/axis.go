package variant

import (
	"iter"
	"regexp"
	"strings"
	"unicode"

	varerrors "github.com/alexisbeaulieu97/variants/pkg/errors"
)

var axisNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Axis is a named configuration dimension with a closed, ordered set of legal
// values and a default. Axis values are immutable once defined.
type Axis struct {
	name   string
	values []string
	index  map[string]int
	def    string
}

// newAxis expects name to have passed ValidateAxisName.
func newAxis(name string, legalValues []string, defaultValue string) (*Axis, error) {
	if len(legalValues) == 0 {
		return nil, varerrors.NewEmptyLegalSetError(name)
	}

	values := make([]string, len(legalValues))
	index := make(map[string]int, len(legalValues))
	for i, value := range legalValues {
		if err := ValidateToken(name, value); err != nil {
			return nil, err
		}
		if _, seen := index[value]; seen {
			return nil, varerrors.NewDuplicateValueError(name, value)
		}
		index[value] = i
		values[i] = value
	}

	if _, ok := index[defaultValue]; !ok {
		return nil, varerrors.NewInvalidDefaultError(name, defaultValue, values)
	}

	return &Axis{name: name, values: values, index: index, def: defaultValue}, nil
}

// ValidateAxisName reports whether name is usable as an axis identifier.
func ValidateAxisName(name string) error {
	if name == "" {
		return varerrors.NewInvalidNameError("", "", "axis name cannot be empty")
	}
	if !axisNamePattern.MatchString(name) {
		return varerrors.NewInvalidNameError(name, "", "axis name must match "+axisNamePattern.String())
	}
	return nil
}

// ValidateToken reports whether value is usable as a legal value of axis.
func ValidateToken(axis, value string) error {
	if value == "" {
		return varerrors.NewInvalidNameError(axis, value, "value token cannot be empty")
	}
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return varerrors.NewInvalidNameError(axis, value, "value token cannot contain whitespace")
	}
	return nil
}

// Name returns the axis identifier.
func (a Axis) Name() string {
	return a.name
}

// Default returns the value substituted when a request omits the axis.
func (a Axis) Default() string {
	return a.def
}

// Values returns a copy of the legal values in definition order.
func (a Axis) Values() []string {
	out := make([]string, len(a.values))
	copy(out, a.values)
	return out
}

// Len returns the number of legal values.
func (a Axis) Len() int {
	return len(a.values)
}

// Contains reports whether value is legal for the axis.
func (a Axis) Contains(value string) bool {
	_, ok := a.index[value]
	return ok
}

// All yields the legal values in definition order. The sequence can be ranged
// over any number of times.
func (a Axis) All() iter.Seq[string] {
	values := a.values
	return func(yield func(string) bool) {
		for _, value := range values {
			if !yield(value) {
				return
			}
		}
	}
}
