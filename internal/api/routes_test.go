package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infralogger "github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/metrics"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/api"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/config"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/counters"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/handler"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/storage"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/telemetry"
)

type stubUpstream struct {
	err error
}

func (s *stubUpstream) Now(context.Context) (*storage.ServerTime, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &storage.ServerTime{Time: time.Now(), Version: "PostgreSQL 16.2"}, nil
}

func (s *stubUpstream) Incr(context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return 1, nil
}

func (s *stubUpstream) Ping(context.Context) error {
	return s.err
}

func newTestServer(t *testing.T, db, cache *stubUpstream) (*gin.Engine, *counters.Counters) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Service: config.ServiceConfig{
		Name:    "web-app",
		Version: "1.0.0",
		Port:    3000,
	}}

	reg := prometheus.NewRegistry()
	tel := telemetry.NewProvider(reg)
	c := counters.New()
	h := handler.NewProbeHandler(handler.ServiceInfo{Name: "web-app"}, c, db, cache, tel, time.Now())

	server := api.NewServer(cfg, infralogger.NewNop(), api.Dependencies{
		Handler:     h,
		HTTPMetrics: metrics.NewHTTPMetrics(reg),
		Gatherer:    reg,
		Database:    db,
		Cache:       cache,
		StartTime:   time.Now(),
	})

	return server.Router(), c
}

func do(router http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, http.NoBody))
	return w
}

func TestRoutes_AllRegistered(t *testing.T) {
	router, _ := newTestServer(t, &stubUpstream{}, &stubUpstream{})

	paths := []string{
		"/", "/health", "/db", "/cache", "/info", "/stats",
		"/api/health", "/api/db", "/api/cache", "/api/info", "/api/stats",
		"/health/ready", "/health/memory", "/metrics",
	}
	for _, path := range paths {
		w := do(router, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	assert.Equal(t, http.StatusOK, do(router, http.MethodHead, "/health").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/nope").Code)
}

func TestRoutes_CountingInvariant(t *testing.T) {
	router, c := newTestServer(t, &stubUpstream{}, &stubUpstream{})

	counted := []string{
		"/", "/health", "/db", "/cache", "/info",
		"/api/health", "/api/db", "/api/cache", "/api/info",
	}
	for _, path := range counted {
		do(router, http.MethodGet, path)
	}
	for _, path := range []string{"/stats", "/api/stats", "/health/ready", "/health/memory", "/metrics"} {
		do(router, http.MethodGet, path)
	}
	do(router, http.MethodHead, "/health")

	assert.Equal(t, counters.Snapshot{DB: 2, Cache: 2, Total: int64(len(counted))}, c.Snapshot())
}

func TestRoutes_ReadinessDatabaseDown(t *testing.T) {
	router, _ := newTestServer(t, &stubUpstream{err: errors.New("connection refused")}, &stubUpstream{})

	w := do(router, http.MethodGet, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	// Liveness does not depend on upstreams.
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusInternalServerError, do(router, http.MethodGet, "/db").Code)
}

func TestRoutes_ReadinessCacheDownIsDegraded(t *testing.T) {
	router, _ := newTestServer(t, &stubUpstream{}, &stubUpstream{err: errors.New("connection refused")})

	w := do(router, http.MethodGet, "/health/ready")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}

func TestRoutes_MetricsExposition(t *testing.T) {
	router, _ := newTestServer(t, &stubUpstream{}, &stubUpstream{err: errors.New("connection refused")})

	do(router, http.MethodGet, "/db")
	do(router, http.MethodGet, "/cache")

	body := do(router, http.MethodGet, "/metrics").Body.String()
	assert.Contains(t, body, `swarm_probe_route_requests_total{route="/db"} 1`)
	assert.Contains(t, body, `swarm_probe_upstream_errors_total{upstream="cache"} 1`)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/db",status="200"} 1`)
}
