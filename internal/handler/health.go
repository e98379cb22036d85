package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness. GET /health
func (h *ProbeHandler) Health(c *gin.Context) {
	h.countTotal(c)
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"service":   h.info.Name,
		"uptime":    h.uptime(),
		"timestamp": h.timestamp(),
	})
}

// APIHealth reports liveness with version and node identity. GET /api/health
func (h *ProbeHandler) APIHealth(c *gin.Context) {
	h.countTotal(c)
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"service":   h.info.Name,
		"uptime":    h.uptime(),
		"timestamp": h.timestamp(),
		"version":   h.info.Version,
		"hostname":  h.info.Hostname,
		"node":      h.node(),
	})
}
