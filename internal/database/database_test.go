package database

import (
	"path/filepath"
	"testing"

	"github.com/killallgit/podcast-search/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name   string
		dbPath string
	}{
		{name: "in-memory database", dbPath: ":memory:"},
		{name: "file database in nested directory", dbPath: filepath.Join(t.TempDir(), "nested", "podcasts.db")},
		{name: "empty path falls back to memory", dbPath: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)
			require.NoError(t, err)
			require.NotNil(t, conn)
			defer conn.Close()

			assert.NoError(t, conn.HealthCheck())
		})
	}
}

func TestDB_AutoMigrate(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.AutoMigrate(models.All()...))
	assert.True(t, conn.Migrator().HasTable(&models.Podcast{}))

	// second migration must be a no-op
	assert.NoError(t, conn.AutoMigrate(models.All()...))
}

func TestDB_HealthCheckAfterClose(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	assert.Error(t, conn.HealthCheck())

	var nilDB *DB
	assert.Error(t, nilDB.HealthCheck())
}

func TestDSN(t *testing.T) {
	assert.Equal(t, ":memory:", dsn(":memory:"))
	assert.Equal(t, "file::memory:?cache=shared", dsn("file::memory:?cache=shared"))
	assert.Equal(t, "data/p.db?_busy_timeout=5000&_journal_mode=WAL", dsn("data/p.db"))
}
