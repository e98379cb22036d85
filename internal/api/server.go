// Package api wires the probe handlers into the shared gin server.
package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	infragin "github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/gin"
	infralogger "github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/metrics"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/config"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/handler"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

// Pinger checks an upstream dependency for readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies are the collaborators the server needs beyond config.
type Dependencies struct {
	Handler     *handler.ProbeHandler
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
	Database    Pinger
	Cache       Pinger
	StartTime   time.Time
}

// NewServer creates a new HTTP server.
func NewServer(cfg *config.Config, log infralogger.Logger, deps Dependencies) *infragin.Server {
	builder := infragin.NewServerBuilder(cfg.Service.Name, cfg.Service.Port).
		WithLogger(log).
		WithDebug(cfg.Service.Debug).
		WithVersion(cfg.Service.Version).
		WithTimeouts(defaultReadTimeout, defaultWriteTimeout, defaultIdleTimeout).
		WithStartTime(deps.StartTime)

	if deps.HTTPMetrics != nil {
		builder = builder.WithMiddleware(deps.HTTPMetrics.Middleware())
	}
	if deps.Database != nil {
		builder = builder.WithHealthCheck("database", infragin.DatabaseHealthChecker(deps.Database.Ping))
	}
	if deps.Cache != nil {
		builder = builder.WithHealthCheck("redis", infragin.RedisHealthChecker(deps.Cache.Ping))
	}

	return builder.
		WithRoutes(func(router *gin.Engine) {
			SetupRoutes(router, deps.Handler, deps.Gatherer)
		}).
		Build()
}
