package controller

import (
	"net/http"
	"sonoplan/pkg/metrics"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records HTTP request latency per route.
type Metrics struct {
	duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the request histogram with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests by method, route and status code",
		Buckets:   metrics.DefaultBuckets,
	}, []string{"method", "route", "code"})

	if err := reg.Register(duration); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &Metrics{duration: duration}, nil
}

// Middleware observes the latency of every request. The route label is the
// matched chi pattern, so path parameters do not explode label cardinality.
// Requests that did not match a route are labelled "unmatched".
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		m.duration.
			WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
