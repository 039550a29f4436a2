package repository

import (
	"database/sql"
	"fmt"

	"github.com/bkktransit/transit-coverage-go/internal/models"
)

// StationRepository handles database operations for stations
type StationRepository struct {
	db *sql.DB
}

// NewStationRepository creates a new station repository
func NewStationRepository(db *sql.DB) *StationRepository {
	return &StationRepository{db: db}
}

// ReplaceAll swaps the station table contents for the given set in one
// transaction. Insertion order is preserved (rowid) because gap detection
// depends on input row order along each branch.
func (r *StationRepository) ReplaceAll(stations []models.Station) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM stations"); err != nil {
		return fmt.Errorf("failed to clear stations: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO stations (
			station_id, name, name_eng, lat, lng,
			line_name_eng, line_color_hex, line_service_name
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range stations {
		if _, err := stmt.Exec(s.ID, s.Name, s.NameEng, s.Lat, s.Lng,
			s.LineNameEng, s.LineColorHex, s.LineServiceName); err != nil {
			return fmt.Errorf("failed to insert station %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit stations: %w", err)
	}
	return nil
}

// GetAll retrieves every station in insertion order.
func (r *StationRepository) GetAll() ([]models.Station, error) {
	rows, err := r.db.Query(`
		SELECT station_id, name, name_eng, lat, lng,
			line_name_eng, line_color_hex, line_service_name
		FROM stations
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []models.Station
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.NameEng, &s.Lat, &s.Lng,
			&s.LineNameEng, &s.LineColorHex, &s.LineServiceName); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}

// GetByID retrieves a single station by its ID.
func (r *StationRepository) GetByID(id string) (*models.Station, error) {
	var s models.Station
	err := r.db.QueryRow(`
		SELECT station_id, name, name_eng, lat, lng,
			line_name_eng, line_color_hex, line_service_name
		FROM stations
		WHERE station_id = ?
	`, id).Scan(&s.ID, &s.Name, &s.NameEng, &s.Lat, &s.Lng,
		&s.LineNameEng, &s.LineColorHex, &s.LineServiceName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query station %s: %w", id, err)
	}
	return &s, nil
}

// Count returns the number of stored stations.
func (r *StationRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM stations").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count stations: %w", err)
	}
	return n, nil
}
