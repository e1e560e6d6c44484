package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the service
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsActive  prometheus.Gauge

	// Business
	URLsCreatedTotal          *prometheus.CounterVec // kind=random|custom
	RedirectsTotal            *prometheus.CounterVec // outcome=resolved|not_found|gone
	QuotaRejectionsTotal      prometheus.Counter
	AllocationCollisionsTotal prometheus.Counter
	PurgedURLsTotal           prometheus.Counter

	// Cache
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec
	CacheErrors      *prometheus.CounterVec
}

// NewMetrics creates all collectors and registers them on reg.
// Tests pass a fresh prometheus.NewRegistry() so repeated construction does not collide.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by endpoint, method and status code",
			},
			[]string{"endpoint", "method", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_active",
				Help: "Number of HTTP requests currently being processed",
			},
		),
		URLsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "urls_created_total",
				Help: "Total number of URLs shortened, by code kind",
			},
			[]string{"kind"},
		),
		RedirectsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "url_resolutions_total",
				Help: "Total number of short code resolutions by outcome",
			},
			[]string{"outcome"},
		),
		QuotaRejectionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "anonymous_quota_rejections_total",
				Help: "Anonymous creations rejected because the address reached its quota",
			},
		),
		AllocationCollisionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "short_code_collisions_total",
				Help: "Random short codes that collided with an existing code",
			},
		),
		PurgedURLsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "purged_urls_total",
				Help: "Expired URLs removed by the purge job",
			},
		),
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits by operation",
			},
			[]string{"operation"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses by operation",
			},
			[]string{"operation"},
		),
		CacheErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_errors_total",
				Help: "Total number of cache errors by operation",
			},
			[]string{"operation"},
		),
	}
}
