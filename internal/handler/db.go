package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/north-cloud/swarm-probe/internal/storage"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/telemetry"
)

const databaseName = "PostgreSQL"

// DB runs the server time query. GET /db
//
// The db counter is incremented before the query, so failed requests
// are counted too.
func (h *ProbeHandler) DB(c *gin.Context) {
	h.countDB(c)

	st, err := h.queryNow(c)
	if err != nil {
		h.upstreamFailed(c, telemetry.UpstreamDatabase, err, false)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"database": databaseName,
		"time":     st.Time.UTC().Format(timestampLayout),
		"hostname": h.info.Hostname,
	})
}

// APIDB runs the server time query and reports the db request count.
// GET /api/db
func (h *ProbeHandler) APIDB(c *gin.Context) {
	count := h.countDB(c)

	st, err := h.queryNow(c)
	if err != nil {
		h.upstreamFailed(c, telemetry.UpstreamDatabase, err, true)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"database":     databaseName,
		"connection":   "active",
		"time":         st.Time.UTC().Format(timestampLayout),
		"version":      st.Version,
		"hostname":     h.info.Hostname,
		"requestCount": count,
	})
}

func (h *ProbeHandler) queryNow(c *gin.Context) (*storage.ServerTime, error) {
	start := time.Now()
	st, err := h.db.Now(c.Request.Context())
	h.telemetry.RecordUpstream(telemetry.UpstreamDatabase, time.Since(start), err)
	return st, err
}
