// Package metrics exposes Prometheus metrics for the lunar API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zapponejosh/lunar-api/internal/gridcache"
)

// Conversion directions used as the "direction" label.
const (
	ToLunar     = "to_lunar"
	ToGregorian = "to_gregorian"
)

// StatsSource reports grid cache counters. *gridcache.Cache satisfies it.
type StatsSource interface {
	Stats() gridcache.Stats
}

// Metrics owns a private registry and the collectors registered on it.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	conversions     *prometheus.CounterVec
}

// New creates the registry and registers request, conversion and, when
// cache is non-nil, grid cache metrics.
func New(cache StatsSource) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lunar_conversions_total",
				Help: "Calendar conversions by direction and outcome",
			},
			[]string{"direction", "result"},
		),
	}

	m.registry.MustRegister(m.requestsTotal, m.requestDuration, m.conversions)
	if cache != nil {
		m.registry.MustRegister(newCacheCollector(cache))
	}
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveConversion counts one conversion. A nil err counts as "ok".
func (m *Metrics) ObserveConversion(direction string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.conversions.WithLabelValues(direction, result).Inc()
}

// Middleware records request count and latency, labelled by the chi route
// pattern so URL parameters don't explode label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		path := routePattern(r)

		m.requestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// cacheCollector reads gridcache.Stats at scrape time.
type cacheCollector struct {
	source    StatsSource
	hits      *prometheus.Desc
	misses    *prometheus.Desc
	builds    *prometheus.Desc
	evictions *prometheus.Desc
	size      *prometheus.Desc
}

func newCacheCollector(source StatsSource) *cacheCollector {
	return &cacheCollector{
		source:    source,
		hits:      prometheus.NewDesc("lunar_grid_cache_hits_total", "Month grid cache hits", nil, nil),
		misses:    prometheus.NewDesc("lunar_grid_cache_misses_total", "Month grid cache misses", nil, nil),
		builds:    prometheus.NewDesc("lunar_grid_cache_builds_total", "Month grids built", nil, nil),
		evictions: prometheus.NewDesc("lunar_grid_cache_evictions_total", "Month grids evicted", nil, nil),
		size:      prometheus.NewDesc("lunar_grid_cache_entries", "Month grids currently cached", nil, nil),
	}
}

func (c *cacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.builds
	ch <- c.evictions
	ch <- c.size
}

func (c *cacheCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.builds, prometheus.CounterValue, float64(s.Builds))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions))
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(s.Size))
}
