package api

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, statusHandler http.Handler) *Server {
	t.Helper()

	logger := zerolog.Nop()
	srv, err := NewServer(&Config{Host: "127.0.0.1", Port: 9898, Service: "pulsar-probe"}, statusHandler, &logger)
	require.NoError(t, err)

	srv.registerHandlers()
	srv.registerMiddlewares()
	return srv
}

func serve(srv *Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealthzHandler(t *testing.T) {
	srv := newTestServer(t, nil)

	atomic.StoreInt32(&healthy, 1)
	t.Cleanup(func() { atomic.StoreInt32(&healthy, 0) })

	rec := serve(srv, http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "OK"}`, rec.Body.String())
}

func TestHealthzHandlerUnhealthy(t *testing.T) {
	srv := newTestServer(t, nil)

	atomic.StoreInt32(&healthy, 0)

	rec := serve(srv, http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestReadyzHandler(t *testing.T) {
	srv := newTestServer(t, nil)

	atomic.StoreInt32(&ready, 1)
	t.Cleanup(func() { atomic.StoreInt32(&ready, 0) })

	rec := serve(srv, http.MethodGet, "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "OK"}`, rec.Body.String())
}

func TestReadyzHandlerNotReady(t *testing.T) {
	srv := newTestServer(t, nil)

	atomic.StoreInt32(&ready, 0)

	rec := serve(srv, http.MethodGet, "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStatusRoute(t *testing.T) {
	statusHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Producing": {"Percentage": 100}}`))
	})
	srv := newTestServer(t, statusHandler)

	rec := serve(srv, http.MethodGet, "/status")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Producing": {"Percentage": 100}}`, rec.Body.String())
}

func TestStatusRouteAbsent(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := serve(srv, http.MethodGet, "/status")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsRoute(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := serve(srv, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := serve(srv, http.MethodPost, "/healthz")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
