package catalog

import (
	"path/filepath"
	"testing"

	"github.com/mealpoint/nutriscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrateCatalogSQLite runs the embedded migrations up and down against
// a fresh SQLite database.
func TestMigrateCatalogSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	// Up to latest
	require.NoError(t, MigrateCatalog(schema.SQLiteBackend, dbPath, -1))

	// Re-running is a no-op, not an error
	require.NoError(t, MigrateCatalog(schema.SQLiteBackend, dbPath, -1))

	// Down to initial state
	require.NoError(t, MigrateCatalog(schema.SQLiteBackend, dbPath, 0))
}

// TestMigrateCatalogToVersion migrates to an explicit version.
func TestMigrateCatalogToVersion(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")
	require.NoError(t, MigrateCatalog(schema.SQLiteBackend, dbPath, 1))
}

// TestMigrateCatalogNoneBackend rejects the disabled backend.
func TestMigrateCatalogNoneBackend(t *testing.T) {
	err := MigrateCatalog(schema.NoneBackend, "", -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

// TestMigrateCatalogUnsupportedBackend rejects unknown backend names.
func TestMigrateCatalogUnsupportedBackend(t *testing.T) {
	err := MigrateCatalog("oracle", "", -1)
	assert.Error(t, err)
}
