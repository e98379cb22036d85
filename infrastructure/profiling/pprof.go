// Package profiling starts optional pprof and Pyroscope profilers.
package profiling

import (
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/logger"
)

const (
	defaultPprofPort  = "6060"
	readHeaderTimeout = 5 * time.Second
)

// StartPprofServer serves the net/http/pprof endpoints on localhost when
// ENABLE_PROFILING=true. PPROF_PORT overrides the port (default 6060).
// It returns the address it listens on, or "" when disabled.
func StartPprofServer(log logger.Logger) string {
	if os.Getenv("ENABLE_PROFILING") != "true" {
		return ""
	}

	port := os.Getenv("PPROF_PORT")
	if port == "" {
		port = defaultPprofPort
	}

	// Localhost only: profiles must not be reachable through the overlay network.
	addr := net.JoinHostPort("localhost", port)

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info("Starting pprof server", logger.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("pprof server error", logger.Error(err))
		}
	}()

	return addr
}
