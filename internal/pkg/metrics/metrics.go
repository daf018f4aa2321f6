package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bff_http_requests_total",
		Help: "Total number of HTTP requests by route and status",
	}, []string{"method", "route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bff_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000},
	}, []string{"method", "route"})
	UpstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bff_upstream_requests_total",
		Help: "Total upstream requests by provider and outcome",
	}, []string{"upstream", "outcome"})
	UpstreamDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bff_upstream_duration_ms",
		Help:    "Upstream call duration in milliseconds, retries included",
		Buckets: []float64{10, 50, 100, 200, 500, 1000, 2000, 5000, 10000},
	}, []string{"upstream"})
	CacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bff_cache_hits_total",
		Help: "Total redis cache hits",
	}, []string{"kind"})
	CacheMissesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bff_cache_misses_total",
		Help: "Total redis cache misses",
	}, []string{"kind"})
	HotelsReturned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bff_hotels_returned",
		Help:    "Number of priced hotels returned per place request",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 200, 500},
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(UpstreamRequestsTotal)
	prometheus.MustRegister(UpstreamDurationMs)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(HotelsReturned)
}

// Handler - обработчик /metrics для Prometheus
func Handler() http.Handler { return promhttp.Handler() }
