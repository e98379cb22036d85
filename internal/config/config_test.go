package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	t.Setenv(legacyEnvironmentVar, "")

	cfg := &Config{}
	setDefaults(cfg)

	assert.Equal(t, defaultServiceName, cfg.Service.Name)
	assert.Equal(t, defaultVersion, cfg.Service.Version)
	assert.Equal(t, defaultServicePort, cfg.Service.Port)
	assert.Equal(t, defaultEnvironment, cfg.Service.Environment)

	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "testdb", cfg.Database.Database)
	assert.Empty(t, cfg.Database.User)
	assert.Empty(t, cfg.Database.Password)

	assert.Equal(t, "cache:6379", cfg.Redis.Address())
	assert.Equal(t, "visits", cfg.Redis.CounterKey)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestSetDefaults_HostnameFallback(t *testing.T) {
	want, err := os.Hostname()
	require.NoError(t, err)

	cfg := &Config{}
	setDefaults(cfg)

	assert.Equal(t, want, cfg.Service.Hostname)
	assert.Empty(t, cfg.Service.Node)
}

func TestSetDefaults_LegacyEnvironment(t *testing.T) {
	t.Setenv(legacyEnvironmentVar, "staging")

	cfg := &Config{}
	setDefaults(cfg)

	assert.Equal(t, "staging", cfg.Service.Environment)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "development")
	t.Setenv(legacyEnvironmentVar, "staging")
	t.Setenv("HOSTNAME", "web-app.1.abc")
	t.Setenv("DB_HOST", "postgres")
	t.Setenv("DB_USER", "probe")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("REDIS_HOST", "redis")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Service.Port)
	assert.Equal(t, "development", cfg.Service.Environment)
	assert.Equal(t, "web-app.1.abc", cfg.Service.Hostname)
	assert.Equal(t, "web-app.1.abc", cfg.Service.Node)
	assert.Equal(t, "postgres", cfg.Database.Host)
	assert.Equal(t, "probe", cfg.Database.User)
	assert.Equal(t, "redis:6379", cfg.Redis.Address())
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAMLFile(t *testing.T) {
	for _, name := range []string{"PORT", "DB_USER", "DB_PASSWORD", "REDIS_COUNTER_KEY"} {
		t.Setenv(name, "")
	}

	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
service:
  name: probe
  port: 3100
database:
  user: yaml-user
  password: yaml-pass
redis:
  counter_key: hits
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "probe", cfg.Service.Name)
	assert.Equal(t, "yaml-user", cfg.Database.User)
	assert.Equal(t, "hits", cfg.Redis.CounterKey)
}

func TestValidate_MissingCredentials(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, "database.user: is required", err.Error())

	cfg.Database.User = "postgres"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, "database.password: is required", err.Error())
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "postgres"
	cfg.Database.Password = "secret"

	assert.NoError(t, cfg.Validate())
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Service.Port = 70000

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service.port")
}
