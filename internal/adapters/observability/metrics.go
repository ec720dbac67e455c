package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travelagg", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "travelagg", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travelagg", Name: "external_requests_total", Help: "Outbound requests."},
		[]string{"service", "endpoint", "status"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travelagg", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	IntentAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travelagg", Name: "intent_attempts_total", Help: "Intent-extraction attempts per backend."},
		[]string{"backend", "outcome"}, // outcome: ok|error|bad_json|low_confidence
	)
	Searches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travelagg", Name: "searches_total", Help: "Search requests by outcome."},
		[]string{"mode", "outcome"},
	)
	PackagesGenerated = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "travelagg", Name: "packages_generated",
			Help:    "Affordable packages generated per search before ranking.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 150},
		},
	)
)

func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ExternalRequests, CacheEvents, IntentAttempts, Searches, PackagesGenerated)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveExternal(service, endpoint string, status int) {
	ExternalRequests.WithLabelValues(service, endpoint, strconv.Itoa(status)).Inc()
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveIntent(backend, outcome string) {
	IntentAttempts.WithLabelValues(backend, outcome).Inc()
}

func ObserveSearch(mode, outcome string, packages int) {
	Searches.WithLabelValues(mode, outcome).Inc()
	PackagesGenerated.Observe(float64(packages))
}
