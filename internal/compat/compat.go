package compat

import (
	"fmt"
	"slices"

	"github.com/alexisbeaulieu97/variants/internal/config"
)

// ChangeKind classifies a difference between two definition sets.
type ChangeKind string

const (
	AxisAdded       ChangeKind = "axis_added"
	AxisRemoved     ChangeKind = "axis_removed"
	ValueAdded      ChangeKind = "value_added"
	ValueRemoved    ChangeKind = "value_removed"
	DefaultChanged  ChangeKind = "default_changed"
	ValuesReordered ChangeKind = "values_reordered"
)

// Change is one difference between two definition sets.
//
// Breaking changes alter the outcome of requests that were valid before:
// removed axes and values start failing, and a changed default silently
// changes every request that omits the axis.
type Change struct {
	Kind     ChangeKind `json:"kind"`
	Axis     string     `json:"axis"`
	Value    string     `json:"value,omitempty"`
	Previous string     `json:"previous,omitempty"`
	Breaking bool       `json:"breaking"`
}

func (c Change) String() string {
	switch c.Kind {
	case AxisAdded:
		return fmt.Sprintf("axis %q added (default %q)", c.Axis, c.Value)
	case AxisRemoved:
		return fmt.Sprintf("axis %q removed", c.Axis)
	case ValueAdded:
		return fmt.Sprintf("axis %q: value %q added", c.Axis, c.Value)
	case ValueRemoved:
		return fmt.Sprintf("axis %q: value %q removed", c.Axis, c.Value)
	case DefaultChanged:
		return fmt.Sprintf("axis %q: default changed from %q to %q", c.Axis, c.Previous, c.Value)
	case ValuesReordered:
		return fmt.Sprintf("axis %q: values reordered", c.Axis)
	default:
		return fmt.Sprintf("axis %q: %s", c.Axis, c.Kind)
	}
}

// Report lists the changes from one definition set to another.
type Report struct {
	Changes []Change `json:"changes"`
}

// Breaking returns the breaking subset of the changes.
func (r Report) Breaking() []Change {
	var out []Change
	for _, c := range r.Changes {
		if c.Breaking {
			out = append(out, c)
		}
	}
	return out
}

// HasBreaking reports whether any change is breaking.
func (r Report) HasBreaking() bool {
	return len(r.Breaking()) > 0
}

// Empty reports whether the definition sets are equivalent.
func (r Report) Empty() bool {
	return len(r.Changes) == 0
}

// Compare reports the changes needed to go from before to after. Axes are
// visited in the order of before, then axes new in after.
func Compare(before, after *config.Definitions) Report {
	var report Report
	add := func(c Change) { report.Changes = append(report.Changes, c) }

	for _, old := range axesOf(before) {
		current, ok := after.Axis(old.Name)
		if !ok {
			add(Change{Kind: AxisRemoved, Axis: old.Name, Breaking: true})
			continue
		}

		for _, value := range old.Values {
			if !slices.Contains(current.Values, value) {
				add(Change{Kind: ValueRemoved, Axis: old.Name, Value: value, Breaking: true})
			}
		}
		for _, value := range current.Values {
			if !slices.Contains(old.Values, value) {
				add(Change{Kind: ValueAdded, Axis: old.Name, Value: value})
			}
		}

		if prev, next := old.EffectiveDefault(), current.EffectiveDefault(); prev != next {
			add(Change{Kind: DefaultChanged, Axis: old.Name, Value: next, Previous: prev, Breaking: true})
		}

		if reordered(old.Values, current.Values) {
			add(Change{Kind: ValuesReordered, Axis: old.Name})
		}
	}

	for _, axis := range axesOf(after) {
		if _, ok := before.Axis(axis.Name); !ok {
			add(Change{Kind: AxisAdded, Axis: axis.Name, Value: axis.EffectiveDefault()})
		}
	}

	return report
}

func axesOf(defs *config.Definitions) []config.AxisDefinition {
	if defs == nil {
		return nil
	}
	return defs.Axes
}

// reordered reports whether the values present in both lists appear in a
// different relative order.
func reordered(before, after []string) bool {
	var common []string
	for _, value := range before {
		if slices.Contains(after, value) {
			common = append(common, value)
		}
	}
	var commonAfter []string
	for _, value := range after {
		if slices.Contains(before, value) {
			commonAfter = append(commonAfter, value)
		}
	}
	return !slices.Equal(common, commonAfter)
}
