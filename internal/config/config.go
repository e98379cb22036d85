// Package config loads the swarm-probe configuration.
package config

import (
	"os"

	infraconfig "github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/config"
)

// Default configuration values.
const (
	defaultServiceName = "web-app"
	defaultServicePort = 3000
	defaultVersion     = "1.0.0"
	defaultEnvironment = "production"

	// legacyEnvironmentVar is honoured when APP_ENV is not set, so existing
	// stack files keep working.
	legacyEnvironmentVar = "NODE_ENV"
)

// Config holds the application configuration.
type Config struct {
	Service  ServiceConfig              `yaml:"service"`
	Database infraconfig.DatabaseConfig `yaml:"database"`
	Redis    infraconfig.RedisConfig    `yaml:"redis"`
	Logging  infraconfig.LoggingConfig  `yaml:"logging"`
}

// ServiceConfig holds service-level configuration. Hostname falls back to
// os.Hostname; Node is the raw HOSTNAME value and stays empty when unset.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Version     string `env:"APP_VERSION" yaml:"version"`
	Port        int    `env:"PORT"        yaml:"port"`
	Environment string `env:"APP_ENV"     yaml:"environment"`
	Hostname    string `env:"HOSTNAME"    yaml:"hostname"`
	Node        string `env:"HOSTNAME"    yaml:"node"`
	Debug       bool   `env:"APP_DEBUG"   yaml:"debug"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return infraconfig.LoadWithDefaults[Config](path, setDefaults)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	cfg.Database.SetDefaults()
	cfg.Redis.SetDefaults()
	cfg.Logging.SetDefaults()
}

// setServiceDefaults applies default values to ServiceConfig.
func setServiceDefaults(svc *ServiceConfig) {
	if svc.Name == "" {
		svc.Name = defaultServiceName
	}
	if svc.Version == "" {
		svc.Version = defaultVersion
	}
	if svc.Port == 0 {
		svc.Port = defaultServicePort
	}
	if svc.Environment == "" {
		svc.Environment = os.Getenv(legacyEnvironmentVar)
	}
	if svc.Environment == "" {
		svc.Environment = defaultEnvironment
	}
	if svc.Hostname == "" {
		if h, err := os.Hostname(); err == nil {
			svc.Hostname = h
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := infraconfig.ValidatePort("service.port", c.Service.Port); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Redis.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
