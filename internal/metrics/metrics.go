package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	varerrors "github.com/alexisbeaulieu97/variants/pkg/errors"
)

// Metrics holds the registry's Prometheus collectors. It implements
// variant.Observer.
type Metrics struct {
	AxesDefined      prometheus.Gauge
	AxisValues       *prometheus.GaugeVec
	ResolutionsTotal prometheus.Counter
	RequestedAxes    prometheus.Histogram
	RejectionsTotal  *prometheus.CounterVec
}

// New creates the collectors and registers them on registry.
func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)
	return &Metrics{
		AxesDefined: factory.NewGauge(prometheus.GaugeOpts{
			Name: "variants_axes_defined",
			Help: "Number of axes defined on the registry",
		}),
		AxisValues: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "variants_axis_values",
				Help: "Number of legal values per axis",
			},
			[]string{"axis"},
		),
		ResolutionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "variants_resolutions_total",
			Help: "Total number of successful resolutions",
		}),
		RequestedAxes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "variants_requested_axes",
			Help:    "Number of axes explicitly supplied per successful resolution",
			Buckets: []float64{0, 1, 2, 3, 5, 8},
		}),
		RejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "variants_rejections_total",
				Help: "Total number of rejected definitions and resolutions by kind",
			},
			[]string{"kind", "axis"},
		),
	}
}

// AxisDefined records a new axis.
func (m *Metrics) AxisDefined(axis string, values int) {
	if m == nil {
		return
	}
	m.AxesDefined.Inc()
	m.AxisValues.WithLabelValues(axis).Set(float64(values))
}

// Resolved records a successful resolution.
func (m *Metrics) Resolved(requested int) {
	if m == nil {
		return
	}
	m.ResolutionsTotal.Inc()
	m.RequestedAxes.Observe(float64(requested))
}

// Rejected records a failed definition or resolution. Unknown axis names are
// collapsed into one label value to keep cardinality bounded.
func (m *Metrics) Rejected(kind varerrors.ErrorKind, axis string) {
	if m == nil {
		return
	}
	if kind == varerrors.KindUnknownAxis || kind == varerrors.KindInvalidName {
		axis = "_unknown"
	}
	m.RejectionsTotal.WithLabelValues(kind.String(), axis).Inc()
}
