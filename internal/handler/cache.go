package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/north-cloud/swarm-probe/internal/telemetry"
)

// Cache increments the shared visit counter. GET /cache
//
// The cache counter is incremented before the Redis call.
func (h *ProbeHandler) Cache(c *gin.Context) {
	h.countCache(c)

	visits, err := h.incrVisits(c)
	if err != nil {
		h.upstreamFailed(c, telemetry.UpstreamCache, err, false)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Redis is working",
		"visits":   visits,
		"hostname": h.info.Hostname,
	})
}

// APICache increments the shared visit counter and reports the cache
// request count. GET /api/cache
func (h *ProbeHandler) APICache(c *gin.Context) {
	count := h.countCache(c)

	visits, err := h.incrVisits(c)
	if err != nil {
		h.upstreamFailed(c, telemetry.UpstreamCache, err, true)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"service":      "Redis",
		"visits":       visits,
		"hostname":     h.info.Hostname,
		"requestCount": count,
	})
}

func (h *ProbeHandler) incrVisits(c *gin.Context) (int64, error) {
	start := time.Now()
	n, err := h.visits.Incr(c.Request.Context())
	h.telemetry.RecordUpstream(telemetry.UpstreamCache, time.Since(start), err)
	return n, err
}
