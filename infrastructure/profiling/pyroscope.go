package profiling

import (
	"fmt"
	"os"
	"runtime"

	"github.com/grafana/pyroscope-go"

	"github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/logger"
)

// PyroscopeOptions tags the profiles sent to Pyroscope.
type PyroscopeOptions struct {
	ServiceName string
	Version     string
	Environment string
	Hostname    string
}

// PyroscopeProfiler wraps a running Pyroscope profiler.
type PyroscopeProfiler struct {
	profiler *pyroscope.Profiler
}

// StartPyroscope starts continuous profiling when
// ENABLE_CONTINUOUS_PROFILING=true. PYROSCOPE_SERVER_URL selects the server
// (default http://pyroscope:4040).
//
// Returns nil, nil when disabled.
func StartPyroscope(opts PyroscopeOptions, log logger.Logger) (*PyroscopeProfiler, error) {
	if os.Getenv("ENABLE_CONTINUOUS_PROFILING") != "true" {
		return nil, nil //nolint:nilnil // disabled is not an error
	}

	serverURL := os.Getenv("PYROSCOPE_SERVER_URL")
	if serverURL == "" {
		serverURL = "http://pyroscope:4040"
	}

	cfg := pyroscope.Config{
		ApplicationName: "swarm." + opts.ServiceName,
		ServerAddress:   serverURL,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
		Tags: map[string]string{
			"environment": opts.Environment,
			"version":     opts.Version,
			"hostname":    opts.Hostname,
			"go_version":  runtime.Version(),
		},
	}

	profiler, err := pyroscope.Start(cfg)
	if err != nil {
		return nil, fmt.Errorf("start pyroscope profiler: %w", err)
	}

	log.Info("Pyroscope continuous profiling started",
		logger.String("application", cfg.ApplicationName),
		logger.String("server", serverURL),
	)

	return &PyroscopeProfiler{profiler: profiler}, nil
}

// Stop stops the profiler. Safe on a nil receiver.
func (p *PyroscopeProfiler) Stop() error {
	if p == nil || p.profiler == nil {
		return nil
	}
	return p.profiler.Stop()
}
