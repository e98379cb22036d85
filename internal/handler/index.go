package handler

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var indexHTML []byte

// apiEndpoints is advertised by the JSON variant of GET /.
var apiEndpoints = []string{
	"/api/health",
	"/api/db",
	"/api/cache",
	"/api/info",
	"/api/stats",
}

// Index serves the dashboard page to browsers and an endpoint listing to
// everything else. JSON is offered first, so a missing Accept header or
// */* gets JSON. GET /
func (h *ProbeHandler) Index(c *gin.Context) {
	h.countTotal(c)

	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Docker Swarm Test Environment",
		"endpoints": apiEndpoints,
	})
}
