package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "navgraph"

// Metrics groups the service's Prometheus collectors.
type Metrics struct {
	RequestsTotal        *prometheus.CounterVec
	RouteTotal           *prometheus.CounterVec
	RouteDurationSeconds *prometheus.HistogramVec
	RoadmapBuildSeconds  prometheus.Histogram
	RoadmapVertices      prometheus.Gauge
	RateLimitedTotal     prometheus.Counter
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by route and status code",
			},
			[]string{"method", "route", "status"},
		),
		RouteTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "route_queries_total",
				Help:      "Route queries by algorithm and result kind",
			},
			[]string{"algorithm", "kind"},
		),
		RouteDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "route_duration_seconds",
				Help:      "Time spent searching a route",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"algorithm"},
		),
		RoadmapBuildSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "roadmap_build_seconds",
				Help:      "Time spent building a roadmap",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
		),
		RoadmapVertices: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "roadmap_vertices",
				Help:      "Vertices in the current roadmap",
			},
		),
		RateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "http",
				Name:      "rate_limited_total",
				Help:      "Requests rejected by the rate limiter",
			},
		),
	}
}
