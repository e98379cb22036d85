// Package handler serves the swarm-probe HTTP routes. Every route exists
// twice: a bare path with a compact body and an /api variant with a richer
// one.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	infraerrors "github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/errors"
	infralogger "github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/counters"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/storage"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/telemetry"
)

// timestampLayout is RFC 3339 in UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// defaultNodeName is reported as node when the hostname is unknown.
const defaultNodeName = "swarm-node"

// DatabaseProber queries the database clock.
type DatabaseProber interface {
	Now(ctx context.Context) (*storage.ServerTime, error)
}

// VisitCounter increments the shared visit counter.
type VisitCounter interface {
	Incr(ctx context.Context) (int64, error)
}

// ServiceInfo describes this process.
type ServiceInfo struct {
	Name        string
	Version     string
	Environment string
	Hostname    string
	// Node is reported as node; empty means defaultNodeName.
	Node string
}

// ProbeHandler serves every probe route.
type ProbeHandler struct {
	info      ServiceInfo
	counters  *counters.Counters
	db        DatabaseProber
	visits    VisitCounter
	telemetry *telemetry.Provider
	startTime time.Time
	now       func() time.Time
}

// NewProbeHandler creates a ProbeHandler with the given dependencies.
func NewProbeHandler(
	info ServiceInfo,
	c *counters.Counters,
	db DatabaseProber,
	visits VisitCounter,
	tel *telemetry.Provider,
	startTime time.Time,
) *ProbeHandler {
	return &ProbeHandler{
		info:      info,
		counters:  c,
		db:        db,
		visits:    visits,
		telemetry: tel,
		startTime: startTime,
		now:       time.Now,
	}
}

func (h *ProbeHandler) timestamp() string {
	return h.now().UTC().Format(timestampLayout)
}

func (h *ProbeHandler) uptime() float64 {
	return h.now().Sub(h.startTime).Seconds()
}

func (h *ProbeHandler) node() string {
	if h.info.Node == "" {
		return defaultNodeName
	}
	return h.info.Node
}

func (h *ProbeHandler) countTotal(c *gin.Context) {
	h.counters.IncTotal()
	h.telemetry.RecordRoute(c.FullPath())
}

func (h *ProbeHandler) countDB(c *gin.Context) int64 {
	n := h.counters.IncDB()
	h.telemetry.RecordRoute(c.FullPath())
	return n
}

func (h *ProbeHandler) countCache(c *gin.Context) int64 {
	n := h.counters.IncCache()
	h.telemetry.RecordRoute(c.FullPath())
	return n
}

// upstreamFailed logs and records err, then answers 500 with the
// underlying driver message. api selects the /api body shape.
func (h *ProbeHandler) upstreamFailed(c *gin.Context, upstream string, err error, api bool) {
	infralogger.FromContext(c.Request.Context()).Warn("Upstream call failed",
		infralogger.String("upstream", upstream),
		infralogger.String("path", c.FullPath()),
		infralogger.Error(err),
	)
	_ = c.Error(err)

	message := infraerrors.Cause(err).Error()
	if api {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":    false,
			"error":      message,
			"connection": "failed",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
