// Package metrics counts handler calls. The counters live in their own
// registry, which also backs the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const Namespace = "forum"

var (
	Registry = prometheus.NewRegistry()

	HandlerCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "handler_calls_total",
			Help:      "Number of handled forum operations.",
		},
		[]string{"operation"},
	)

	StoredPosts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "stored_posts",
			Help:      "Number of posts known to the store at the last status call.",
		},
	)
)

func init() {
	Registry.MustRegister(
		HandlerCalls,
		StoredPosts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func Inc(operation string) {
	HandlerCalls.WithLabelValues(operation).Inc()
}
