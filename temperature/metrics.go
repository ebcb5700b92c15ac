package temperature

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "heatmap"
	subsystem = "loader"
)

// Metrics represents loader metrics.
type Metrics struct {
	Fetches  *prometheus.CounterVec
	Duration prometheus.Histogram
	Records  prometheus.Gauge
}

// NewMetrics creates new loader metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fetches_total",
				Help:      "Total number of dataset fetches.",
			},
			[]string{"result"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fetch_duration_seconds",
				Help:      "Duration of dataset fetches.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		Records: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "records",
				Help:      "The number of records of the loaded dataset.",
			},
		),
	}
}

func (m *Metrics) observe(elapsed time.Duration, records int, err error) {
	if m == nil {
		return
	}
	m.Duration.Observe(elapsed.Seconds())
	if err != nil {
		m.Fetches.WithLabelValues("error").Inc()
		return
	}
	m.Fetches.WithLabelValues("ok").Inc()
	m.Records.Set(float64(records))
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.Fetches.Describe(ch)
	m.Duration.Describe(ch)
	m.Records.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.Fetches.Collect(ch)
	m.Duration.Collect(ch)
	m.Records.Collect(ch)
}

// check interfaces
var (
	_ prometheus.Collector = (*Metrics)(nil)
)
