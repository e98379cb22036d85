package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/metrics"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/handler"
)

// SetupRoutes configures the probe routes and /metrics.
// Infrastructure health routes are registered by the gin builder.
func SetupRoutes(router *gin.Engine, h *handler.ProbeHandler, gatherer prometheus.Gatherer) {
	router.GET("/", h.Index)

	router.GET("/health", h.Health)
	router.GET("/db", h.DB)
	router.GET("/cache", h.Cache)
	router.GET("/info", h.Info)
	router.GET("/stats", h.Stats)

	api := router.Group("/api")
	api.GET("/health", h.APIHealth)
	api.GET("/db", h.APIDB)
	api.GET("/cache", h.APICache)
	api.GET("/info", h.APIInfo)
	api.GET("/stats", h.Stats)

	router.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))
}
