package cmd

import (
	"fmt"

	"github.com/mealpoint/nutriscore/internal/catalog"
	"github.com/mealpoint/nutriscore/internal/contract"
	"github.com/mealpoint/nutriscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// catalogSetup loads minimal configuration needed for catalog operations.
// This is used by commands that need catalog access without full shared setup.
func catalogSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get catalog-related config values
	backendStr := viper.GetString("catalog-backend")
	connStr := viper.GetString("catalog-db-connect")

	// Handle empty or none backend as the SQLite default so catalog commands
	// work out of the box
	backend := schema.DatabaseBackend(backendStr)
	if backend == "" || backend == schema.NoneBackend {
		backend = schema.SQLiteBackend
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize the store with the loaded config
	store, err := catalog.NewStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize catalog store: %w", err)
	}
	catalogStore = store

	cfg.CatalogBackend = backend
	cfg.CatalogDBConnect = connStr
	cfg.CatalogPath = viper.GetString("catalog")

	return nil
}

// catalogSetupWrapper wraps catalogSetup to provide PreRunE for catalog commands.
func catalogSetupWrapper(_ *cobra.Command, _ []string) error {
	return catalogSetup()
}

// catalogMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func catalogMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get catalog-related config values
	backendStr := viper.GetString("catalog-backend")
	connStr := viper.GetString("catalog-db-connect")

	backend := schema.DatabaseBackend(backendStr)
	if backend == "" || backend == schema.NoneBackend {
		backend = schema.SQLiteBackend
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetCatalogDBFilePath()
	}

	cfg.CatalogBackend = backend
	cfg.CatalogDBConnect = connStr

	return nil
}

// catalogMigrateSetupWrapper wraps catalogMigrateSetup to provide PreRunE for migrate command.
func catalogMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return catalogMigrateSetup()
}

// catalogCmd focused on food catalog data management.
//
// Note: Catalog subcommands use minimal initialization (catalogSetup) instead
// of the full sharedSetup used by scoring commands. This avoids profile
// loading and weight processing for simple data operations.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the durable food catalog",
	Long: `Manage the food catalog used as the default source for recommendations.

When a catalog backend is configured, nutriscore stores foods durably:
- Food identity (name, diet type)
- Macro values (calories, protein, carbs, fat)
- Allergen tags for filtering

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  import  - Load foods from a JSON file into the catalog
  status  - Show catalog statistics
  migrate - Run database schema migrations

Examples:
  # Import a catalog file into the default SQLite store
  nutriscore catalog import --catalog foods.json

  # Check catalog status
  nutriscore catalog status`,
}

// catalogImportCmd loads foods from a JSON file into the catalog store.
var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import foods from a JSON file into the catalog store",
	Long: `Read a food catalog JSON file and upsert every food into the store.

Foods are keyed by name: re-importing a file updates macros and allergens
for foods that already exist rather than duplicating them.

Requires: --catalog parameter

Examples:
  # Import into the default SQLite store
  nutriscore catalog import --catalog foods.json

  # Import into PostgreSQL
  nutriscore catalog import --catalog foods.json \
    --catalog-backend postgresql \
    --catalog-db-connect "host=localhost port=5432 user=postgres dbname=nutriscore"`,
	PreRunE: catalogSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.CatalogPath == "" {
			contract.LogFatal("Cannot import catalog", fmt.Errorf("--catalog is required"))
		}
		foods, err := catalog.LoadCatalogFile(cfg.CatalogPath)
		if err != nil {
			contract.LogFatal("Cannot read catalog file", err)
		}
		for _, food := range foods {
			if err := catalogStore.PutFood(rootCtx, food); err != nil {
				contract.LogFatal(fmt.Sprintf("Cannot store food %q", food.Name), err)
			}
		}
		fmt.Printf("Imported %d foods into %s catalog.\n", len(foods), cfg.CatalogBackend)
	},
}

// catalogStatusCmd shows catalog status.
var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display catalog statistics and connection details",
	Long: `Show detailed information about the food catalog store.

Displays:
- Backend type and connection status
- Total number of foods stored
- Database size (SQLite only)

Use this to:
- Verify the catalog backend is configured and reachable
- Check how many foods are available for scoring

Examples:
  # Check catalog status
  nutriscore catalog status`,
	PreRunE: catalogSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := catalogStore.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get catalog status", err)
		}
		catalog.PrintCatalogStatus(status)
	},
}

// catalogMigrateCmd runs database migrations for the catalog store.
var catalogMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the food catalog store.

Migrations allow:
- Upgrading to new schema versions when nutriscore is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  nutriscore catalog migrate

  # Migrate to specific version
  nutriscore catalog migrate --target-version 1

  # Rollback to initial state
  nutriscore catalog migrate --target-version 0`,
	PreRunE: catalogMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := catalog.MigrateCatalog(cfg.CatalogBackend, cfg.CatalogDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
