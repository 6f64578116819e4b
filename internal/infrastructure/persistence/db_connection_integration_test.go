//go:build integration
// +build integration

package persistence

import (
	"testing"

	"github.com/overcast-software/career-caddy-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBConnection_UnsupportedTypeFails(t *testing.T) {
	_, err := NewDBConnection(config.DatabaseSettings{Type: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}

func TestMigrate_FailsOnClosedConnection(t *testing.T) {
	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType, DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, CloseDB(db))

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to migrate schema")
}

func TestMigrate_Succeeds(t *testing.T) {
	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType, DSN: ":memory:"})
	require.NoError(t, err)
	defer func() { _ = CloseDB(db) }()

	require.NoError(t, Migrate(db))

	// The schema is in place once every model's table answers a count.
	var count int64
	require.NoError(t, db.Table("user").Count(&count).Error)
	require.NoError(t, db.Table("job_application_status").Count(&count).Error)
}
