package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	infralogger "github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/metrics"
	"github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/profiling"
	infraredis "github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/redis"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/api"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/cache"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/config"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/counters"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/handler"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/storage"
	"github.com/jonesrussell/north-cloud/swarm-probe/internal/telemetry"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

// runServe creates all dependencies and runs the HTTP server until a
// shutdown signal arrives. Unreachable upstreams are logged, not fatal.
func runServe(ctx context.Context, configPath string) error {
	startTime := time.Now()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log, err := createLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Start profiling (if enabled)
	profiling.StartPprofServer(log)
	pyro, err := profiling.StartPyroscope(profiling.PyroscopeOptions{
		ServiceName: cfg.Service.Name,
		Version:     cfg.Service.Version,
		Environment: cfg.Service.Environment,
		Hostname:    cfg.Service.Hostname,
	}, log)
	if err != nil {
		log.Warn("Continuous profiling disabled", infralogger.Error(err))
	}
	defer func() { _ = pyro.Stop() }()

	db, err := storage.Open(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = storage.Close(db) }()

	if pingErr := storage.PingWithTimeout(ctx, db); pingErr != nil {
		log.Warn("Database unreachable at startup, continuing",
			infralogger.String("host", cfg.Database.Host),
			infralogger.Error(pingErr),
		)
	} else {
		log.Info("Database connected",
			infralogger.String("host", cfg.Database.Host),
			infralogger.Int("port", cfg.Database.Port),
			infralogger.String("database", cfg.Database.Database),
		)
	}

	redisClient, err := infraredis.NewClient(infraredis.Config{
		Address:  cfg.Redis.Address(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if redisClient == nil {
		return fmt.Errorf("create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	if err != nil {
		log.Warn("Redis unreachable at startup, continuing",
			infralogger.String("address", cfg.Redis.Address()),
			infralogger.Error(err),
		)
	} else {
		log.Info("Redis connected", infralogger.String("address", cfg.Redis.Address()))
	}

	tel := telemetry.NewProvider(prometheus.DefaultRegisterer)
	prober := storage.NewProber(db, tel.Tracer)
	visits := cache.NewVisits(redisClient, cfg.Redis.CounterKey, tel.Tracer)

	probeHandler := handler.NewProbeHandler(handler.ServiceInfo{
		Name:        cfg.Service.Name,
		Version:     cfg.Service.Version,
		Environment: cfg.Service.Environment,
		Hostname:    cfg.Service.Hostname,
		Node:        cfg.Service.Node,
	}, counters.New(), prober, visits, tel, startTime)

	server := api.NewServer(cfg, log, api.Dependencies{
		Handler:     probeHandler,
		HTTPMetrics: metrics.NewHTTPMetrics(prometheus.DefaultRegisterer),
		Gatherer:    prometheus.DefaultGatherer,
		Database:    prober,
		Cache:       visits,
		StartTime:   startTime,
	})

	log.Info("Swarm probe ready",
		infralogger.Int("port", cfg.Service.Port),
		infralogger.String("environment", cfg.Service.Environment),
		infralogger.String("hostname", cfg.Service.Hostname),
		infralogger.String("version", cfg.Service.Version),
	)

	return server.Run(ctx)
}

// loadConfig loads and validates configuration.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if validationErr := cfg.Validate(); validationErr != nil {
		return nil, fmt.Errorf("validate config: %w", validationErr)
	}
	return cfg, nil
}

// createLogger creates a logger instance from configuration.
func createLogger(cfg *config.Config) (infralogger.Logger, error) {
	log, err := infralogger.New(infralogger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(infralogger.String("service", cfg.Service.Name)), nil
}
