package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations are applied in version order; each runs at most once.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_stations",
		SQL: `
			CREATE TABLE IF NOT EXISTS stations (
				station_id        TEXT PRIMARY KEY,
				name              TEXT NOT NULL,
				name_eng          TEXT NOT NULL,
				lat               REAL NOT NULL,
				lng               REAL NOT NULL,
				line_name_eng     TEXT NOT NULL,
				line_color_hex    TEXT NOT NULL,
				line_service_name TEXT NOT NULL,
				created_at        TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_analysis_runs",
		SQL: `
			CREATE TABLE IF NOT EXISTS analysis_runs (
				id            INTEGER PRIMARY KEY AUTOINCREMENT,
				run_at        TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				station_count INTEGER NOT NULL,
				coverage_sqkm REAL NOT NULL,
				gap_count     INTEGER NOT NULL,
				zone_count    INTEGER NOT NULL,
				output_path   TEXT NOT NULL,
				duration_ms   INTEGER NOT NULL
			)
		`,
	},
}

// Migrate applies all pending migrations.
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		log.Printf("[Database] Applied migration %d: %s", m.Version, m.Name)
	}
	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}
