// Package middleware instruments plain http handlers (like the /metrics one)
// which do not go through the main router middlewares.
package middleware

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Middleware struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestSize     *prometheus.SummaryVec
	responseSize    *prometheus.SummaryVec
}

// New registers the handler metrics in registry. Default buckets are used when buckets is nil.
func New(registry prometheus.Registerer, buckets []float64) *Middleware {
	if buckets == nil {
		buckets = prometheus.ExponentialBuckets(0.1, 1.5, 5)
	}

	reg := promauto.With(registry)
	return &Middleware{
		requests: reg.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Tracks the number of HTTP requests.",
			}, []string{"method", "code", "handler"},
		),
		requestDuration: reg.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Tracks the latencies for HTTP requests.",
				Buckets: buckets,
			},
			[]string{"method", "code", "handler"},
		),
		requestSize: reg.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "http_request_size_bytes",
				Help: "Tracks the size of HTTP requests.",
			},
			[]string{"method", "code", "handler"},
		),
		responseSize: reg.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "http_response_size_bytes",
				Help: "Tracks the size of HTTP responses.",
			},
			[]string{"method", "code", "handler"},
		),
	}
}

// WrapHandler wraps the given handler with the metrics middleware, labeled with handlerName.
func (m *Middleware) WrapHandler(handlerName string, handler http.Handler) http.HandlerFunc {
	labels := prometheus.Labels{"handler": handlerName}
	wrapped := promhttp.InstrumentHandlerCounter(
		m.requests.MustCurryWith(labels),
		promhttp.InstrumentHandlerDuration(
			m.requestDuration.MustCurryWith(labels),
			promhttp.InstrumentHandlerRequestSize(
				m.requestSize.MustCurryWith(labels),
				promhttp.InstrumentHandlerResponseSize(
					m.responseSize.MustCurryWith(labels),
					handler,
				),
			),
		),
	)
	return wrapped.ServeHTTP
}
