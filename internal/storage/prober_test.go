package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/north-cloud/swarm-probe/internal/storage"
)

func newMockProber(t *testing.T) (*storage.Prober, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return storage.NewProber(sqlx.NewDb(db, "sqlmock"), nil), mock
}

func TestProber_Now(t *testing.T) {
	t.Parallel()

	prober, mock := newMockProber(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT NOW\(\) AS time, version\(\) AS version`).
		WillReturnRows(sqlmock.NewRows([]string{"time", "version"}).
			AddRow(now, "PostgreSQL 16.2"))

	st, err := prober.Now(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Time.Equal(now))
	assert.Equal(t, "PostgreSQL 16.2", st.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProber_Now_Error(t *testing.T) {
	t.Parallel()

	prober, mock := newMockProber(t)
	driverErr := errors.New("dial tcp: lookup db: no such host")

	mock.ExpectQuery(`SELECT NOW\(\)`).WillReturnError(driverErr)

	st, err := prober.Now(context.Background())
	require.Error(t, err)
	assert.Nil(t, st)
	assert.ErrorIs(t, err, driverErr)
	assert.Contains(t, err.Error(), "query server time")
}

func TestProber_Ping(t *testing.T) {
	t.Parallel()

	prober, mock := newMockProber(t)

	mock.ExpectPing()
	require.NoError(t, prober.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	err := prober.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
