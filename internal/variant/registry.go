package variant

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/alexisbeaulieu97/variants/internal/logger"
	varerrors "github.com/alexisbeaulieu97/variants/pkg/errors"
)

// Observer receives registry outcomes. Implementations must be safe for
// concurrent use.
type Observer interface {
	AxisDefined(axis string, values int)
	Resolved(requested int)
	Rejected(kind varerrors.ErrorKind, axis string)
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger attaches a logger; entries are tagged with component=variant.
func WithLogger(log *logger.Logger) Option {
	return func(r *Registry) {
		r.log = log.WithComponent("variant")
	}
}

// WithObserver attaches an observer notified of definitions and resolutions.
func WithObserver(observer Observer) Option {
	return func(r *Registry) {
		r.observer = observer
	}
}

// WithAutoFreeze freezes the registry on the first Resolve call.
func WithAutoFreeze() Option {
	return func(r *Registry) {
		r.autoFreeze = true
	}
}

// table is an immutable snapshot of the defined axes.
type table struct {
	axes  map[string]*Axis
	order []string
	index map[string]int
}

var emptyTable = &table{axes: map[string]*Axis{}, index: map[string]int{}}

func (t *table) with(axis *Axis) *table {
	next := &table{
		axes:  make(map[string]*Axis, len(t.axes)+1),
		order: make([]string, 0, len(t.order)+1),
		index: make(map[string]int, len(t.index)+1),
	}
	for name, existing := range t.axes {
		next.axes[name] = existing
	}
	next.order = append(next.order, t.order...)
	for name, pos := range t.index {
		next.index[name] = pos
	}

	next.axes[axis.name] = axis
	next.index[axis.name] = len(next.order)
	next.order = append(next.order, axis.name)
	return next
}

// Registry owns the closed sets of legal values for each axis. Definitions are
// serialized and publish a new snapshot; reads never lock.
type Registry struct {
	mu         sync.Mutex
	current    atomic.Pointer[table]
	frozen     atomic.Bool
	autoFreeze bool
	log        *logger.Logger
	observer   Observer
}

// NewRegistry creates an empty registry accepting definitions.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	r.current.Store(emptyTable)
	return r
}

func (r *Registry) snapshot() *table {
	if t := r.current.Load(); t != nil {
		return t
	}
	return emptyTable
}

// DefineAxis registers an axis with its legal values and default.
func (r *Registry) DefineAxis(name string, legalValues []string, defaultValue string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ValidateAxisName(name); err != nil {
		return r.reject(err)
	}
	if r.frozen.Load() {
		return r.reject(varerrors.NewFrozenError(name))
	}

	current := r.snapshot()
	if _, exists := current.axes[name]; exists {
		return r.reject(varerrors.NewDuplicateAxisError(name))
	}

	axis, err := newAxis(name, legalValues, defaultValue)
	if err != nil {
		return r.reject(err)
	}

	r.current.Store(current.with(axis))

	r.log.Debug("axis defined", "axis", name, "values", axis.values, "default", axis.def)
	if r.observer != nil {
		r.observer.AxisDefined(name, len(axis.values))
	}
	return nil
}

// Freeze stops further definitions. It is idempotent.
func (r *Registry) Freeze() {
	if r.frozen.Load() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Swap(true) {
		return
	}
	r.log.Debug("registry frozen", "axes", len(r.snapshot().order))
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

// Resolve validates a partial request and fills every omitted axis with its
// default. Keys are checked in sorted order so the reported error does not
// depend on map iteration.
func (r *Registry) Resolve(partial map[string]string) (ResolvedConfiguration, error) {
	if r.autoFreeze {
		r.Freeze()
	}

	t := r.snapshot()

	keys := make([]string, 0, len(partial))
	for name := range partial {
		keys = append(keys, name)
	}
	slices.Sort(keys)

	for _, name := range keys {
		axis, ok := t.axes[name]
		if !ok {
			return ResolvedConfiguration{}, r.reject(varerrors.NewUnknownAxisError(name))
		}
		if value := partial[name]; !axis.Contains(value) {
			return ResolvedConfiguration{}, r.reject(varerrors.NewInvalidValueError(name, value, axis.values))
		}
	}

	values := make([]string, len(t.order))
	for i, name := range t.order {
		if value, ok := partial[name]; ok {
			values[i] = value
			continue
		}
		values[i] = t.axes[name].def
	}

	if r.observer != nil {
		r.observer.Resolved(len(partial))
	}
	return ResolvedConfiguration{order: t.order, index: t.index, values: values}, nil
}

// MustResolve is like Resolve but panics on error. Use it for static
// configurations known at compile time.
func (r *Registry) MustResolve(partial map[string]string) ResolvedConfiguration {
	cfg, err := r.Resolve(partial)
	if err != nil {
		panic(fmt.Sprintf("variant: MustResolve(%v): %v", partial, err))
	}
	return cfg
}

// Defaults returns the configuration made only of axis defaults.
func (r *Registry) Defaults() ResolvedConfiguration {
	t := r.snapshot()
	values := make([]string, len(t.order))
	for i, name := range t.order {
		values[i] = t.axes[name].def
	}
	return ResolvedConfiguration{order: t.order, index: t.index, values: values}
}

// LegalValuesOf returns the legal values of an axis in definition order.
func (r *Registry) LegalValuesOf(name string) (iter.Seq[string], error) {
	axis, ok := r.snapshot().axes[name]
	if !ok {
		return nil, r.reject(varerrors.NewUnknownAxisError(name))
	}
	return axis.All(), nil
}

// DefaultOf returns the default value of an axis.
func (r *Registry) DefaultOf(name string) (string, error) {
	axis, ok := r.snapshot().axes[name]
	if !ok {
		return "", r.reject(varerrors.NewUnknownAxisError(name))
	}
	return axis.def, nil
}

// Axis looks up an axis by name.
func (r *Registry) Axis(name string) (Axis, bool) {
	axis, ok := r.snapshot().axes[name]
	if !ok {
		return Axis{}, false
	}
	return *axis, true
}

// Axes returns every axis in definition order.
func (r *Registry) Axes() []Axis {
	t := r.snapshot()
	out := make([]Axis, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, *t.axes[name])
	}
	return out
}

func (r *Registry) reject(err error) error {
	var cfgErr *varerrors.ConfigurationError
	if errors.As(err, &cfgErr) {
		r.log.Debug("configuration rejected", "kind", cfgErr.Kind.String(), "axis", cfgErr.Axis, "value", cfgErr.Value)
		if r.observer != nil {
			r.observer.Rejected(cfgErr.Kind, cfgErr.Axis)
		}
	}
	return err
}
