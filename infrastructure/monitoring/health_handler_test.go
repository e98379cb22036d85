package monitoring_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/monitoring"
)

func TestReadMemoryStats(t *testing.T) {
	t.Parallel()

	stats := monitoring.ReadMemoryStats()

	assert.Positive(t, stats.HeapAllocMB)
	assert.Positive(t, stats.SysMB)
	assert.GreaterOrEqual(t, stats.NumGoroutine, 1)
}

func TestMemoryHealthHandler(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health/memory", monitoring.MemoryHealthHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/memory", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Memory monitoring.MemoryStats `json:"memory"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.GreaterOrEqual(t, body.Memory.NumGoroutine, 1)
}
