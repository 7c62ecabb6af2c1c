package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace string = "schema_markup"

const (
	StatusSuccess string = "success"
	StatusFailure string = "failure"
)

// RenderMetrics counts renders per format and outcome
type RenderMetrics struct {
	registry *prometheus.Registry

	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	stored   prometheus.Counter
}

func New() *RenderMetrics {
	reg := prometheus.NewRegistry()

	return &RenderMetrics{
		registry: reg,
		renders: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Number of rendered entities by format and status",
		}, []string{"format", "status"}),
		duration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering an entity",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		}, []string{"format"}),
		stored: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stored_entities_total",
			Help:      "Number of entities written to the store",
		}),
	}
}

func (m *RenderMetrics) RenderCompleted(format string, started time.Time, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}

	m.renders.WithLabelValues(format, status).Inc()
	m.duration.WithLabelValues(format).Observe(time.Since(started).Seconds())
}

func (m *RenderMetrics) EntityStored() {
	m.stored.Inc()
}

func (m *RenderMetrics) Registry() prometheus.Gatherer {
	return m.registry
}

func (m *RenderMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
