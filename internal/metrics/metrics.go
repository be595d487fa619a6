package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts engine queries served by the web layer.
type Metrics struct {
	registry *prometheus.Registry
	queries  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "standings",
			Name:      "queries_total",
			Help:      "Engine queries served, by kind.",
		}, []string{"kind"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "standings",
			Name:      "query_failures_total",
			Help:      "Engine queries that returned an error, by kind.",
		}, []string{"kind"}),
	}
}

// Observe records one served query and whether it failed.
func (m *Metrics) Observe(kind string, err error) {
	m.queries.WithLabelValues(kind).Inc()
	if err != nil {
		m.failures.WithLabelValues(kind).Inc()
	}
}

// Serve exposes /metrics on its own listener. Port 0 disables it.
func (m *Metrics) Serve(port int) error {
	if port == 0 {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return http.ListenAndServe(":"+strconv.Itoa(port), mux)
}
