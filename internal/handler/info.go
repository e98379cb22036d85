package handler

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/monitoring"
)

// Info reports runtime metadata. It touches no upstream. GET /info
func (h *ProbeHandler) Info(c *gin.Context) {
	h.countTotal(c)
	c.JSON(http.StatusOK, gin.H{
		"service":     h.info.Name,
		"goVersion":   runtime.Version(),
		"environment": h.info.Environment,
		"hostname":    h.info.Hostname,
		"memory":      monitoring.ReadMemoryStats(),
	})
}

// APIInfo reports runtime metadata with platform, uptime and the request
// counters. GET /api/info
func (h *ProbeHandler) APIInfo(c *gin.Context) {
	h.countTotal(c)
	c.JSON(http.StatusOK, gin.H{
		"goVersion":     runtime.Version(),
		"environment":   h.info.Environment,
		"hostname":      h.info.Hostname,
		"platform":      runtime.GOOS,
		"arch":          runtime.GOARCH,
		"memory":        monitoring.ReadMemoryStats(),
		"uptime":        h.uptime(),
		"requestCounts": h.counters.Snapshot(),
	})
}

// Stats reports the request counters without counting itself.
// GET /stats and GET /api/stats
func (h *ProbeHandler) Stats(c *gin.Context) {
	snap := h.counters.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"totalRequests": snap.Total,
		"dbRequests":    snap.DB,
		"cacheRequests": snap.Cache,
		"timestamp":     h.timestamp(),
	})
}
