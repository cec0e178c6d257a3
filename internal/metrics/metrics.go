// Package metrics defines the Prometheus collectors of the API client and
// of the fixture backend.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes recorded by the client.
const (
	OutcomeOK        = "ok"
	OutcomeRequest   = "request_error"
	OutcomeHTTPError = "http_error"
	OutcomeTransport = "transport_error"
	OutcomeDecode    = "decode_error"
	OutcomeTimeout   = "timeout"
	OutcomeCanceled  = "canceled"
)

// Client holds the collectors updated by the API client.
type Client struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewClient creates the client collectors and registers them on reg. A nil
// reg leaves them unregistered.
func NewClient(reg prometheus.Registerer) *Client {
	f := promauto.With(reg)
	return &Client{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gramudyog_client_requests_total",
			Help: "Total number of backend requests, labeled by resource, method and outcome",
		}, []string{"resource", "method", "outcome"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gramudyog_client_request_duration_seconds",
			Help:    "Latency of backend requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"resource", "method"}),
	}
}

// Observe records one finished request. It is a no-op on a nil Client.
func (m *Client) Observe(resource, method, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(resource, method, outcome).Inc()
	m.Duration.WithLabelValues(resource, method).Observe(d.Seconds())
}

// Server holds the collectors of the fixture backend.
type Server struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewServer creates the server collectors and registers them on reg.
func NewServer(reg prometheus.Registerer) *Server {
	f := promauto.With(reg)
	return &Server{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gramudyog_fakeapi_requests_total",
			Help: "Total number of requests served, labeled by route, method and status",
		}, []string{"route", "method", "status"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gramudyog_fakeapi_request_duration_seconds",
			Help:    "Latency of served requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// Middleware records every request under its chi route pattern.
func (m *Server) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.Requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.Duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
