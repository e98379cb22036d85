package gin_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ginpkg "github.com/gin-gonic/gin"

	infragin "github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/gin"
	"github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/logger"
)

func TestRequestIDLoggerMiddleware_GeneratesID(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	w := serve(router, http.MethodGet, "/test", nil)

	reqID := w.Header().Get(infragin.RequestIDHeader)
	if reqID == "" {
		t.Fatal("X-Request-ID response header is empty, want a generated ID")
	}

	const expectedLen = 32
	if len(reqID) != expectedLen {
		t.Errorf("generated request ID length = %d, want %d", len(reqID), expectedLen)
	}
}

func TestRequestIDLoggerMiddleware_PreservesExistingID(t *testing.T) {
	t.Parallel()

	const inboundID = "trace-from-proxy-abc123"

	router := ginpkg.New()
	router.Use(infragin.RequestIDLoggerMiddleware(logger.NewNop()))

	var gotID string
	router.GET("/test", func(c *ginpkg.Context) {
		gotID = c.GetString(infragin.RequestIDKey)
		c.String(http.StatusOK, "ok")
	})

	w := serve(router, http.MethodGet, "/test", map[string]string{infragin.RequestIDHeader: inboundID})

	if got := w.Header().Get(infragin.RequestIDHeader); got != inboundID {
		t.Errorf("response X-Request-ID = %q, want %q", got, inboundID)
	}
	if gotID != inboundID {
		t.Errorf("gin context request_id = %q, want %q", gotID, inboundID)
	}
}

func TestRequestIDLoggerMiddleware_RejectsOversizedID(t *testing.T) {
	t.Parallel()

	oversized := strings.Repeat("x", 200)
	w := serve(newTestRouter(t), http.MethodGet, "/test", map[string]string{infragin.RequestIDHeader: oversized})

	got := w.Header().Get(infragin.RequestIDHeader)
	if got == oversized || got == "" {
		t.Errorf("X-Request-ID = %q, want a freshly generated ID", got)
	}
}

func TestRequestIDLoggerMiddleware_StoresLoggerInContext(t *testing.T) {
	t.Parallel()

	base := logger.NewNop()
	router := ginpkg.New()
	router.Use(infragin.RequestIDLoggerMiddleware(base))

	var gotLogger logger.Logger
	router.GET("/test", func(c *ginpkg.Context) {
		gotLogger = logger.FromContext(c.Request.Context())
		c.String(http.StatusOK, "ok")
	})

	serve(router, http.MethodGet, "/test", nil)

	if gotLogger != base {
		t.Error("logger.FromContext inside handler did not return the middleware logger")
	}
}

func TestRequestIDLoggerMiddleware_UniqueIDs(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	const iterations = 100
	ids := make(map[string]bool, iterations)
	for range iterations {
		id := serve(router, http.MethodGet, "/test", nil).Header().Get(infragin.RequestIDHeader)
		if ids[id] {
			t.Fatalf("duplicate request ID generated: %s", id)
		}
		ids[id] = true
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	t.Parallel()

	router := ginpkg.New()
	router.Use(infragin.CORSMiddleware(infragin.CORSConfig{Enabled: true}))
	router.GET("/test", func(c *ginpkg.Context) { c.String(http.StatusOK, "ok") })

	w := serve(router, http.MethodOptions, "/test", map[string]string{"Origin": "http://dashboard.local"})

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestCORSMiddleware_RejectsUnknownOrigin(t *testing.T) {
	t.Parallel()

	router := ginpkg.New()
	router.Use(infragin.CORSMiddleware(infragin.CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"http://allowed.local"},
	}))
	router.GET("/test", func(c *ginpkg.Context) { c.String(http.StatusOK, "ok") })

	w := serve(router, http.MethodGet, "/test", map[string]string{"Origin": "http://evil.local"})

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	t.Parallel()

	router := ginpkg.New()
	router.Use(infragin.RecoveryMiddleware(logger.NewNop()))
	router.GET("/panic", func(*ginpkg.Context) { panic("boom") })

	w := serve(router, http.MethodGet, "/panic", nil)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func newTestRouter(t *testing.T) *ginpkg.Engine {
	t.Helper()

	router := ginpkg.New()
	router.Use(infragin.RequestIDLoggerMiddleware(logger.NewNop()))
	router.GET("/test", func(c *ginpkg.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func serve(router http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}
