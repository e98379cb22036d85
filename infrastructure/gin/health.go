package gin

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/monitoring"
)

// HealthStatus represents the status of a health check.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// readinessTimeout bounds all checks of a single readiness request.
const readinessTimeout = 5 * time.Second

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Status  HealthStatus           `json:"status"`
	Service string                 `json:"service"`
	Version string                 `json:"version"`
	Uptime  string                 `json:"uptime"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult represents the result of an individual health check.
type CheckResult struct {
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
	Latency string       `json:"latency,omitempty"`
}

// HealthChecker performs one dependency check.
type HealthChecker func(ctx context.Context) CheckResult

// HealthOptions configures the infrastructure health endpoints.
type HealthOptions struct {
	ServiceName    string
	ServiceVersion string
	// StartTime is used for uptime reporting; zero means "now".
	StartTime time.Time
	Checks    map[string]HealthChecker
}

// RegisterHealthRoutes adds the infrastructure health endpoints:
//   - HEAD /health         lightweight probe for load balancers
//   - GET  /health/ready   dependency checks, 503 when any is unhealthy
//   - GET  /health/memory  runtime memory statistics
//
// GET /health itself belongs to the service.
func RegisterHealthRoutes(router *gin.Engine, opts HealthOptions) {
	if opts.StartTime.IsZero() {
		opts.StartTime = time.Now()
	}

	router.HEAD("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health/ready", readinessHandler(opts))
	router.GET("/health/memory", monitoring.MemoryHealthHandler)
}

func readinessHandler(opts HealthOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()

		response := ReadinessResponse{
			Status:  HealthStatusHealthy,
			Service: opts.ServiceName,
			Version: opts.ServiceVersion,
			Uptime:  time.Since(opts.StartTime).Round(time.Second).String(),
		}

		if len(opts.Checks) > 0 {
			response.Checks = make(map[string]CheckResult, len(opts.Checks))
			for name, check := range opts.Checks {
				result := check(ctx)
				response.Checks[name] = result
				response.Status = worse(response.Status, result.Status)
			}
		}

		statusCode := http.StatusOK
		if response.Status == HealthStatusUnhealthy {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, response)
	}
}

func worse(a, b HealthStatus) HealthStatus {
	rank := map[HealthStatus]int{
		HealthStatusHealthy:   0,
		HealthStatusDegraded:  1,
		HealthStatusUnhealthy: 2,
	}
	if rank[b] > rank[a] {
		return b
	}
	return a
}

// PingChecker turns a ping function into a HealthChecker. A failed ping
// reports failStatus.
func PingChecker(component string, failStatus HealthStatus, ping func(ctx context.Context) error) HealthChecker {
	return func(ctx context.Context) CheckResult {
		start := time.Now()
		err := ping(ctx)
		latency := time.Since(start).String()

		if err != nil {
			return CheckResult{
				Status:  failStatus,
				Message: component + " connection failed: " + err.Error(),
				Latency: latency,
			}
		}

		return CheckResult{
			Status:  HealthStatusHealthy,
			Message: component + " connection OK",
			Latency: latency,
		}
	}
}

// DatabaseHealthChecker reports unhealthy when the database ping fails.
func DatabaseHealthChecker(ping func(ctx context.Context) error) HealthChecker {
	return PingChecker("Database", HealthStatusUnhealthy, ping)
}

// RedisHealthChecker reports degraded when the Redis ping fails: the
// service keeps answering every route that does not touch the cache.
func RedisHealthChecker(ping func(ctx context.Context) error) HealthChecker {
	return PingChecker("Redis", HealthStatusDegraded, ping)
}
