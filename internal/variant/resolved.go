package variant

import (
	"bytes"
	"encoding/json"
	"iter"
	"strings"
)

// ResolvedConfiguration maps every axis known at resolution time to one of its
// legal values. It is immutable; consumers treat its tokens as pre-validated.
type ResolvedConfiguration struct {
	order  []string
	index  map[string]int
	values []string
}

// Get returns the value chosen for axis.
func (c ResolvedConfiguration) Get(axis string) (string, bool) {
	pos, ok := c.index[axis]
	if !ok {
		return "", false
	}
	return c.values[pos], true
}

// Value returns the value chosen for axis or "" when the axis is unknown.
func (c ResolvedConfiguration) Value(axis string) string {
	value, _ := c.Get(axis)
	return value
}

// Len returns the number of axes in the configuration.
func (c ResolvedConfiguration) Len() int {
	return len(c.values)
}

// Axes returns the axis names in definition order.
func (c ResolvedConfiguration) Axes() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// All yields axis/value pairs in definition order.
func (c ResolvedConfiguration) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i, axis := range c.order {
			if !yield(axis, c.values[i]) {
				return
			}
		}
	}
}

// Map returns a copy of the configuration as a plain map.
func (c ResolvedConfiguration) Map() map[string]string {
	out := make(map[string]string, len(c.values))
	for axis, value := range c.All() {
		out[axis] = value
	}
	return out
}

// Equal reports whether both configurations hold the same axis/value pairs.
func (c ResolvedConfiguration) Equal(other ResolvedConfiguration) bool {
	if c.Len() != other.Len() {
		return false
	}
	for axis, value := range c.All() {
		if got, ok := other.Get(axis); !ok || got != value {
			return false
		}
	}
	return true
}

// String renders the configuration as {axis: value, ...}.
func (c ResolvedConfiguration) String() string {
	parts := make([]string, 0, len(c.values))
	for axis, value := range c.All() {
		parts = append(parts, axis+": "+value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// MarshalJSON encodes the configuration as an object keeping axis order.
func (c ResolvedConfiguration) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, axis := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(axis)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
