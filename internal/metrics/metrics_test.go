package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewClient(reg)

	m.Observe("jobs", http.MethodGet, OutcomeOK, 20*time.Millisecond)
	m.Observe("jobs", http.MethodGet, OutcomeOK, 30*time.Millisecond)
	m.Observe("auth", http.MethodPost, OutcomeHTTPError, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("jobs", "GET", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("auth", "POST", OutcomeHTTPError)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Duration))

	n, err := testutil.GatherAndCount(reg, "gramudyog_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestClient_NilIsNoop(t *testing.T) {
	var m *Client
	assert.NotPanics(t, func() { m.Observe("jobs", "GET", OutcomeOK, time.Second) })
}

func TestServer_Middleware(t *testing.T) {
	m := NewServer(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	for _, path := range []string{"/api/jobs/1", "/api/jobs/2", "/ping"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("/api/jobs/{id}", "GET", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("/ping", "GET", "200")))
}
