package variant

import (
	"bytes"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/variants/internal/logger"
	varerrors "github.com/alexisbeaulieu97/variants/pkg/errors"
)

func newButtonRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewButtonRegistry()
	require.NoError(t, err)
	return r
}

func requireKind(t *testing.T, err error, kind varerrors.ErrorKind) *varerrors.ConfigurationError {
	t.Helper()
	var cfgErr *varerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, kind, cfgErr.Kind)
	return cfgErr
}

func TestDefineAxisRegistersValuesInOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.DefineAxis("size", []string{"large", "medium", "small"}, "medium"))

	seq, err := r.LegalValuesOf("size")
	require.NoError(t, err)
	require.Equal(t, []string{"large", "medium", "small"}, slices.Collect(seq))

	def, err := r.DefaultOf("size")
	require.NoError(t, err)
	require.Equal(t, "medium", def)
}

func TestDefineAxisCopiesCallerSlice(t *testing.T) {
	t.Parallel()

	values := []string{"horizontal", "vertical"}
	r := NewRegistry()
	require.NoError(t, r.DefineAxis("orientation", values, "horizontal"))

	values[0] = "diagonal"

	axis, ok := r.Axis("orientation")
	require.True(t, ok)
	require.Equal(t, []string{"horizontal", "vertical"}, axis.Values())
}

func TestDefineAxisFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		axis    string
		values  []string
		def     string
		kind    varerrors.ErrorKind
		setupFn func(*Registry)
	}{
		{name: "empty legal set", axis: "type", values: []string{}, def: "primary", kind: varerrors.KindEmptyLegalSet},
		{name: "nil legal set", axis: "type", values: nil, def: "primary", kind: varerrors.KindEmptyLegalSet},
		{name: "default outside set", axis: "type", values: []string{"primary", "secondary"}, def: "tertiary", kind: varerrors.KindInvalidDefault},
		{name: "duplicate token", axis: "size", values: []string{"small", "small"}, def: "small", kind: varerrors.KindDuplicateValue},
		{name: "empty axis name", axis: "", values: []string{"a"}, def: "a", kind: varerrors.KindInvalidName},
		{name: "malformed axis name", axis: "Type", values: []string{"a"}, def: "a", kind: varerrors.KindInvalidName},
		{name: "blank token", axis: "type", values: []string{"primary", ""}, def: "primary", kind: varerrors.KindInvalidName},
		{name: "token with space", axis: "type", values: []string{"primary one"}, def: "primary one", kind: varerrors.KindInvalidName},
		{
			name: "duplicate axis", axis: "type", values: []string{"primary"}, def: "primary", kind: varerrors.KindDuplicateAxis,
			setupFn: func(r *Registry) { _ = r.DefineAxis("type", []string{"primary"}, "primary") },
		},
		{
			name: "frozen registry", axis: "type", values: []string{"primary"}, def: "primary", kind: varerrors.KindFrozen,
			setupFn: func(r *Registry) { r.Freeze() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewRegistry()
			if tt.setupFn != nil {
				tt.setupFn(r)
			}
			before := len(r.Axes())

			err := r.DefineAxis(tt.axis, tt.values, tt.def)
			requireKind(t, err, tt.kind)
			require.Len(t, r.Axes(), before, "failed definition must not change the table")
		})
	}
}

func TestDefineAxisChecksNameBeforeFrozenState(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Freeze()

	err := r.DefineAxis("Bad Name", []string{"a"}, "a")
	requireKind(t, err, varerrors.KindInvalidName)

	err = r.DefineAxis("good", []string{"a"}, "a")
	requireKind(t, err, varerrors.KindFrozen)
}

func TestInvalidDefaultCarriesLegalSet(t *testing.T) {
	t.Parallel()

	err := NewRegistry().DefineAxis("type", []string{"primary", "secondary"}, "tertiary")
	cfgErr := requireKind(t, err, varerrors.KindInvalidDefault)
	require.Equal(t, "type", cfgErr.Axis)
	require.Equal(t, "tertiary", cfgErr.Value)
	require.Equal(t, []string{"primary", "secondary"}, cfgErr.Legal)
}

func TestResolveButtonScenario(t *testing.T) {
	t.Parallel()

	r := newButtonRegistry(t)

	cfg, err := r.Resolve(map[string]string{})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"type": "primary", "size": "medium", "orientation": "horizontal"}, cfg.Map())
	require.Equal(t, "{type: primary, size: medium, orientation: horizontal}", cfg.String())

	cfg, err = r.Resolve(map[string]string{"size": "small"})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"type": "primary", "size": "small", "orientation": "horizontal"}, cfg.Map())

	_, err = r.Resolve(map[string]string{"type": "danger"})
	cfgErr := requireKind(t, err, varerrors.KindInvalidValue)
	require.Equal(t, "type", cfgErr.Axis)
	require.Equal(t, "danger", cfgErr.Value)
	require.Equal(t, []string{"primary", "secondary"}, cfgErr.Legal)
	require.Contains(t, err.Error(), `"danger" is not valid, must be one of: primary, secondary`)
}

func TestResolveUnknownAxis(t *testing.T) {
	t.Parallel()

	r := newButtonRegistry(t)
	_, err := r.Resolve(map[string]string{"nonexistentAxis": "x"})
	cfgErr := requireKind(t, err, varerrors.KindUnknownAxis)
	require.Equal(t, "nonexistentAxis", cfgErr.Axis)
	require.True(t, errors.Is(err, varerrors.ErrUnknownAxis))
}

func TestResolveReportsFirstSortedKey(t *testing.T) {
	t.Parallel()

	r := newButtonRegistry(t)
	for i := 0; i < 20; i++ {
		_, err := r.Resolve(map[string]string{"type": "danger", "size": "huge", "zzz": "x"})
		cfgErr := requireKind(t, err, varerrors.KindInvalidValue)
		require.Equal(t, "size", cfgErr.Axis)
	}
}

func TestResolveNilRequestUsesDefaults(t *testing.T) {
	t.Parallel()

	r := newButtonRegistry(t)
	cfg, err := r.Resolve(nil)
	require.NoError(t, err)
	require.True(t, cfg.Equal(r.Defaults()))
	require.Equal(t, []string{"type", "size", "orientation"}, cfg.Axes())
}

func TestFailedResolveDoesNotAffectLaterCalls(t *testing.T) {
	t.Parallel()

	r := newButtonRegistry(t)
	_, err := r.Resolve(map[string]string{"orientation": "diagonal"})
	require.Error(t, err)

	cfg, err := r.Resolve(map[string]string{"orientation": "vertical"})
	require.NoError(t, err)
	require.Equal(t, "vertical", cfg.Value("orientation"))
}

func TestLegalValuesOfUnknownAxis(t *testing.T) {
	t.Parallel()

	seq, err := newButtonRegistry(t).LegalValuesOf("color")
	require.Nil(t, seq)
	requireKind(t, err, varerrors.KindUnknownAxis)

	_, err = newButtonRegistry(t).DefaultOf("color")
	requireKind(t, err, varerrors.KindUnknownAxis)
}

func TestLegalValuesOfIsRestartableAndStoppable(t *testing.T) {
	t.Parallel()

	seq, err := newButtonRegistry(t).LegalValuesOf("size")
	require.NoError(t, err)

	require.Equal(t, slices.Collect(seq), slices.Collect(seq))

	var first []string
	for value := range seq {
		first = append(first, value)
		break
	}
	require.Equal(t, []string{"large"}, first)
}

func TestDefineAndResolveInterleave(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.DefineAxis("type", []string{"primary", "secondary"}, "primary"))

	before, err := r.Resolve(nil)
	require.NoError(t, err)
	require.Equal(t, 1, before.Len())

	require.NoError(t, r.DefineAxis("size", []string{"large", "small"}, "small"))

	after, err := r.Resolve(nil)
	require.NoError(t, err)
	require.Equal(t, 2, after.Len())
	require.Equal(t, 1, before.Len(), "earlier configurations are not affected by later definitions")
}

func TestAutoFreezeOnFirstResolve(t *testing.T) {
	t.Parallel()

	r := NewRegistry(WithAutoFreeze())
	require.NoError(t, r.DefineAxis("type", []string{"primary"}, "primary"))
	require.False(t, r.Frozen())

	_, err := r.Resolve(nil)
	require.NoError(t, err)
	require.True(t, r.Frozen())

	err = r.DefineAxis("size", []string{"small"}, "small")
	require.True(t, errors.Is(err, varerrors.ErrFrozen))
}

func TestMustResolvePanicsOnInvalidValue(t *testing.T) {
	t.Parallel()

	r := newButtonRegistry(t)
	require.NotPanics(t, func() { r.MustResolve(map[string]string{"size": "large"}) })
	require.Panics(t, func() { r.MustResolve(map[string]string{"size": "huge"}) })
}

func TestConcurrentResolveWhileDefining(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, DefineButtonAxes(r))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				cfg, err := r.Resolve(map[string]string{"size": "small"})
				assert.NoError(t, err)
				assert.Equal(t, "small", cfg.Value("size"))
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			_ = r.DefineAxis("extra-"+string(rune('a'+j%26))+string(rune('a'+j/26)), []string{"on", "off"}, "off")
		}
	}()

	wg.Wait()
	require.Len(t, r.Axes(), 53)
}

type recordingObserver struct {
	mu       sync.Mutex
	defined  []string
	resolved []int
	rejected []varerrors.ErrorKind
}

func (o *recordingObserver) AxisDefined(axis string, _ int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.defined = append(o.defined, axis)
}

func (o *recordingObserver) Resolved(requested int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resolved = append(o.resolved, requested)
}

func (o *recordingObserver) Rejected(kind varerrors.ErrorKind, _ string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rejected = append(o.rejected, kind)
}

func TestObserverAndLoggerReceiveOutcomes(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	obs := &recordingObserver{}
	r, err := NewButtonRegistry(WithObserver(obs), WithLogger(log))
	require.NoError(t, err)

	_, err = r.Resolve(map[string]string{"size": "small", "type": "secondary"})
	require.NoError(t, err)
	_, err = r.Resolve(map[string]string{"type": "danger"})
	require.Error(t, err)

	require.Equal(t, []string{"type", "size", "orientation"}, obs.defined)
	require.Equal(t, []int{2}, obs.resolved)
	require.Equal(t, []varerrors.ErrorKind{varerrors.KindInvalidValue}, obs.rejected)

	output := buf.String()
	require.Contains(t, output, `"component":"variant"`)
	require.Contains(t, output, "registry frozen")
	require.Contains(t, output, `"kind":"INVALID_VALUE"`)
}
