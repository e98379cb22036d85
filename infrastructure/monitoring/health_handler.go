// Package monitoring reports Go runtime memory statistics.
package monitoring

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

const bytesPerMB = 1024 * 1024

// MemoryStats is a point-in-time view of runtime.MemStats in megabytes.
type MemoryStats struct {
	HeapAllocMB   float64 `json:"heapAllocMB"`
	HeapInuseMB   float64 `json:"heapInuseMB"`
	HeapSysMB     float64 `json:"heapSysMB"`
	StackInuseMB  float64 `json:"stackInuseMB"`
	SysMB         float64 `json:"sysMB"`
	NumGC         uint32  `json:"numGC"`
	NumGoroutine  int     `json:"numGoroutine"`
	LastGCPauseMs float64 `json:"lastGCPauseMs,omitempty"`
}

// ReadMemoryStats samples the runtime.
func ReadMemoryStats() MemoryStats {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	m := MemoryStats{
		HeapAllocMB:  toMB(stats.HeapAlloc),
		HeapInuseMB:  toMB(stats.HeapInuse),
		HeapSysMB:    toMB(stats.HeapSys),
		StackInuseMB: toMB(stats.StackInuse),
		SysMB:        toMB(stats.Sys),
		NumGC:        stats.NumGC,
		NumGoroutine: runtime.NumGoroutine(),
	}

	if stats.NumGC > 0 {
		m.LastGCPauseMs = float64(stats.PauseNs[(stats.NumGC+255)%256]) / float64(time.Millisecond)
	}

	return m
}

func toMB(b uint64) float64 {
	return float64(b) / bytesPerMB
}

// MemoryHealthHandler serves the current memory statistics as JSON.
func MemoryHealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"gomaxprocs": runtime.GOMAXPROCS(0),
		"memory":     ReadMemoryStats(),
	})
}
