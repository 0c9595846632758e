package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reqTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "voice_api",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	reqDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "voice_api",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Metrics records a counter and latency histogram per request.
// Routes are labelled by chi pattern, not raw path, to keep cardinality bounded
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(cw, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		reqTotal.WithLabelValues(r.Method, route, strconv.Itoa(cw.status)).Inc()
		reqDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
