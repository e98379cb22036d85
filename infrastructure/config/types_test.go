package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/config"
)

func TestDatabaseConfig_DSNQuotesValues(t *testing.T) {
	t.Parallel()

	cfg := config.DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "probe",
		Password: `s3cret pass'with\slash`,
		Database: "testdb",
		SSLMode:  "disable",
	}

	want := `host='db' port=5432 user='probe' password='s3cret pass\'with\\slash' dbname='testdb' sslmode='disable'`
	assert.Equal(t, want, cfg.DSN())
}
