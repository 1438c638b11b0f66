// Package catalog provides durable storage for the food catalog.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mealpoint/nutriscore/internal/contract"
	"github.com/mealpoint/nutriscore/schema"

	_ "github.com/go-sql-driver/mysql"  // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"  // PostgreSQL driver
	_ "modernc.org/sqlite"              // SQLite driver
)

// foodsTable is the catalog table name across all backends.
const foodsTable = "nutriscore_foods"

// StoreImpl handles durable food storage using various database backends.
type StoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
	connStr    string
}

var _ contract.CatalogStore = &StoreImpl{} // Compile-time check

// NewStore initializes and returns a new catalog store based on the backend
// type. NoneBackend returns a no-op store that lists no foods.
func NewStore(backend schema.DatabaseBackend, connStr string) (contract.CatalogStore, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetCatalogDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite catalog at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL catalog: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL catalog: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		return &StoreImpl{backend: backend, connStr: connStr}, nil

	default:
		return nil, fmt.Errorf("unsupported catalog backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	if _, err := db.Exec(getCreateTableQuery(backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", foodsTable, err)
	}

	return &StoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				name VARCHAR(255) PRIMARY KEY,
				diet_type VARCHAR(64) NOT NULL DEFAULT '',
				calories INT NOT NULL DEFAULT 0,
				protein_g DOUBLE NOT NULL DEFAULT 0,
				carbs_g DOUBLE NOT NULL DEFAULT 0,
				fat_g DOUBLE NOT NULL DEFAULT 0,
				allergens TEXT
			);
		`, foodsTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				name TEXT PRIMARY KEY,
				diet_type TEXT NOT NULL DEFAULT '',
				calories INTEGER NOT NULL DEFAULT 0,
				protein_g DOUBLE PRECISION NOT NULL DEFAULT 0,
				carbs_g DOUBLE PRECISION NOT NULL DEFAULT 0,
				fat_g DOUBLE PRECISION NOT NULL DEFAULT 0,
				allergens TEXT
			);
		`, foodsTable)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				name TEXT PRIMARY KEY,
				diet_type TEXT NOT NULL DEFAULT '',
				calories INTEGER NOT NULL DEFAULT 0,
				protein_g REAL NOT NULL DEFAULT 0,
				carbs_g REAL NOT NULL DEFAULT 0,
				fat_g REAL NOT NULL DEFAULT 0,
				allergens TEXT
			);
		`, foodsTable)
	}
}

// ListFoods returns every food in the catalog, ordered by name.
func (s *StoreImpl) ListFoods(ctx context.Context) ([]schema.FoodItem, error) {
	if s.backend == schema.NoneBackend || s.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT name, diet_type, calories, protein_g, carbs_g, fat_g, allergens FROM %s ORDER BY name`, foodsTable)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var foods []schema.FoodItem
	for rows.Next() {
		var food schema.FoodItem
		var allergens sql.NullString
		if err := rows.Scan(&food.Name, &food.DietType, &food.Calories, &food.ProteinG, &food.CarbsG, &food.FatG, &allergens); err != nil {
			return nil, fmt.Errorf("failed to scan food row: %w", err)
		}
		if allergens.Valid && allergens.String != "" {
			if err := json.Unmarshal([]byte(allergens.String), &food.Allergens); err != nil {
				return nil, fmt.Errorf("failed to decode allergens for %q: %w", food.Name, err)
			}
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}

// PutFood inserts or replaces a food in the catalog, keyed by name.
func (s *StoreImpl) PutFood(ctx context.Context, food schema.FoodItem) error {
	if s.backend == schema.NoneBackend || s.db == nil {
		return nil
	}

	allergens, err := json.Marshal(food.Allergens)
	if err != nil {
		return fmt.Errorf("failed to encode allergens for %q: %w", food.Name, err)
	}

	_, err = s.db.ExecContext(ctx, s.getUpsertQuery(), food.Name, food.DietType, food.Calories, food.ProteinG, food.CarbsG, food.FatG, string(allergens))
	return err
}

// getUpsertQuery returns the UPSERT query for the backend.
func (s *StoreImpl) getUpsertQuery() string {
	switch s.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (name, diet_type, calories, protein_g, carbs_g, fat_g, allergens) VALUES (?, ?, ?, ?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE diet_type = new.diet_type, calories = new.calories, protein_g = new.protein_g, carbs_g = new.carbs_g, fat_g = new.fat_g, allergens = new.allergens`, foodsTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (name, diet_type, calories, protein_g, carbs_g, fat_g, allergens) VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (name) DO UPDATE SET diet_type = EXCLUDED.diet_type, calories = EXCLUDED.calories, protein_g = EXCLUDED.protein_g, carbs_g = EXCLUDED.carbs_g, fat_g = EXCLUDED.fat_g, allergens = EXCLUDED.allergens`, foodsTable)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (name, diet_type, calories, protein_g, carbs_g, fat_g, allergens) VALUES (?, ?, ?, ?, ?, ?, ?)`, foodsTable)
	}
}

// GetStatus returns status information about the catalog store.
func (s *StoreImpl) GetStatus() (schema.CatalogStatus, error) {
	status := schema.CatalogStatus{
		Backend:   string(s.backend),
		Connected: s.db != nil,
	}

	if s.backend == schema.NoneBackend || s.db == nil {
		return status, nil
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", foodsTable)
	if err := s.db.QueryRow(countQuery).Scan(&status.TotalFoods); err != nil {
		return status, fmt.Errorf("failed to get food count: %w", err)
	}

	if s.backend == schema.SQLiteBackend {
		sizeQuery := "SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()"
		if err := s.db.QueryRow(sizeQuery).Scan(&status.TableSizeBytes); err != nil {
			// If pragma fails, skip size
			status.TableSizeBytes = 0
		}
	}

	return status, nil
}

// Close closes the underlying DB connection.
func (s *StoreImpl) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
