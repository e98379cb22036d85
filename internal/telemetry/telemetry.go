// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for swarm-probe.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName names the tracer obtained from the global provider.
const TracerName = "swarm-probe"

// Upstream labels.
const (
	UpstreamDatabase = "database"
	UpstreamCache    = "cache"
)

// Metrics holds the swarm-probe Prometheus metrics.
type Metrics struct {
	RouteRequests    *prometheus.CounterVec
	UpstreamErrors   *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider registers the metrics on reg (the default registerer when
// nil) and takes a tracer from the global OpenTelemetry provider.
func NewProvider(reg prometheus.Registerer) *Provider {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &Provider{
		Tracer:  otel.Tracer(TracerName),
		Metrics: initMetrics(promauto.With(reg)),
	}
}

func initMetrics(factory promauto.Factory) *Metrics {
	return &Metrics{
		RouteRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "swarm_probe_route_requests_total",
			Help: "Counted requests per probe route",
		}, []string{"route"}),

		UpstreamErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "swarm_probe_upstream_errors_total",
			Help: "Failed calls to an upstream dependency",
		}, []string{"upstream"}),

		UpstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "swarm_probe_upstream_duration_seconds",
			Help:    "Latency of calls to an upstream dependency",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"upstream"}),
	}
}

// RecordRoute counts one request to route.
func (p *Provider) RecordRoute(route string) {
	p.Metrics.RouteRequests.WithLabelValues(route).Inc()
}

// RecordUpstream records the latency of an upstream call and, when err is
// non-nil, an error for that upstream.
func (p *Provider) RecordUpstream(upstream string, duration time.Duration, err error) {
	p.Metrics.UpstreamDuration.WithLabelValues(upstream).Observe(duration.Seconds())
	if err != nil {
		p.Metrics.UpstreamErrors.WithLabelValues(upstream).Inc()
	}
}

