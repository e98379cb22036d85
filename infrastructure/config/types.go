package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL connection and pool configuration.
// User and Password deliberately have no defaults.
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST"     yaml:"host"`
	Port            int           `env:"DB_PORT"     yaml:"port"`
	User            string        `env:"DB_USER"     yaml:"user"`
	Password        string        `env:"DB_PASSWORD" yaml:"password"`
	Database        string        `env:"DB_NAME"     yaml:"database"`
	SSLMode         string        `env:"DB_SSLMODE"  yaml:"sslmode"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// DSN returns the lib/pq key/value connection string. Every value is
// quoted, so passwords may contain spaces, quotes and backslashes.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quoteDSNValue(c.Host), c.Port, quoteDSNValue(c.User), quoteDSNValue(c.Password),
		quoteDSNValue(c.Database), quoteDSNValue(c.SSLMode),
	)
}

// dsnEscaper escapes the two characters that are special inside a quoted
// libpq connection string value.
var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteDSNValue(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

// SetDefaults applies defaults for everything except credentials.
func (c *DatabaseConfig) SetDefaults() {
	if c.Host == "" {
		c.Host = "db"
	}
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.Database == "" {
		c.Database = "testdb"
	}
	if c.SSLMode == "" {
		c.SSLMode = "disable"
	}
	if c.MaxConnections == 0 {
		c.MaxConnections = 10
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 5
	}
	if c.ConnMaxLifetime == 0 {
		c.ConnMaxLifetime = 5 * time.Minute
	}
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Host       string `env:"REDIS_HOST"        yaml:"host"`
	Port       int    `env:"REDIS_PORT"        yaml:"port"`
	Password   string `env:"REDIS_PASSWORD"    yaml:"password"`
	DB         int    `env:"REDIS_DB"          yaml:"db"`
	CounterKey string `env:"REDIS_COUNTER_KEY" yaml:"counter_key"`
}

// Address returns host:port.
func (c *RedisConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SetDefaults applies default values for RedisConfig.
func (c *RedisConfig) SetDefaults() {
	if c.Host == "" {
		c.Host = "cache"
	}
	if c.Port == 0 {
		c.Port = 6379
	}
	if c.CounterKey == "" {
		c.CounterKey = "visits"
	}
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// SetDefaults applies default values for LoggingConfig.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
}
