package echoapi

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trezcool/masomo-layout/core/layout"
)

const metricsNamespace = "masomo_layout"

// metrics are kept in a per-server registry so several servers can live in one process (tests).
type metrics struct {
	registry    *prometheus.Registry
	resolutions *prometheus.CounterVec
	intents     *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "resolutions_total",
			Help:      "Layouts resolved, by platform, device and view.",
		}, []string{"platform", "device", "view"}),
		intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "intents_total",
			Help:      "Item clicks dispatched, by intent kind and navigation outcome.",
		}, []string{"kind", "navigate"}),
	}
	m.registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		m.resolutions,
		m.intents,
	)
	return m
}

func (m *metrics) observeLayout(conf layout.LayoutConfig) {
	m.resolutions.WithLabelValues(string(conf.Platform), string(conf.Device), string(conf.View)).Inc()
}

func (m *metrics) observeIntent(out layout.Outcome) {
	m.intents.WithLabelValues(string(out.Intent.Kind), strconv.FormatBool(out.Navigate)).Inc()
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
