package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Term lookup outcomes reported in term_lookups_total.
const (
	TermLookupFound       = "found"
	TermLookupNotFound    = "not_found"
	TermLookupUnavailable = "unavailable"
)

// MetricsService encapsulates Prometheus instrumentation for one service process.
type MetricsService struct {
	registry           *prometheus.Registry
	handler            http.Handler
	requestDuration    *prometheus.HistogramVec
	requestTotal       *prometheus.CounterVec
	termLookups        *prometheus.CounterVec
	termLookupDuration prometheus.Histogram
}

// NewMetricsService registers core Prometheus collectors labelled with the
// service name.
func NewMetricsService(serviceName string) *MetricsService {
	registry := prometheus.NewRegistry()
	constLabels := prometheus.Labels{}
	if serviceName != "" {
		constLabels["service"] = serviceName
	}

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "http_request_duration_seconds",
		Help:        "Duration of HTTP requests in seconds",
		Buckets:     prometheus.DefBuckets,
		ConstLabels: constLabels,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests",
		ConstLabels: constLabels,
	}, []string{"method", "path", "status"})

	termLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "term_lookups_total",
		Help:        "Term window lookups by outcome",
		ConstLabels: constLabels,
	}, []string{"outcome"})

	termLookupDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:        "term_lookup_duration_seconds",
		Help:        "Latency of term window lookups",
		Buckets:     prometheus.DefBuckets,
		ConstLabels: constLabels,
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "goroutines_total",
		Help:        "Total number of goroutines",
		ConstLabels: constLabels,
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, termLookups, termLookupDuration, goroutines)

	return &MetricsService{
		registry:           registry,
		handler:            promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:    requestDuration,
		requestTotal:       requestTotal,
		termLookups:        termLookups,
		termLookupDuration: termLookupDuration,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry returns the underlying registry.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveTermLookup records the outcome and latency of a term resolution.
func (m *MetricsService) ObserveTermLookup(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.termLookups.WithLabelValues(outcome).Inc()
	m.termLookupDuration.Observe(duration.Seconds())
}
