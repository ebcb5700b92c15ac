package server

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics represents HTTP metrics.
type Metrics struct {
	Requests *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "heatmap",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of handled requests.",
			},
			[]string{"route", "code"},
		),
	}
}

func (m *Metrics) observe(route string, code int) {
	m.Requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.Requests.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.Requests.Collect(ch)
}

// check interfaces
var (
	_ prometheus.Collector = (*Metrics)(nil)
)
