package repository

import (
	"database/sql"
	"fmt"

	"github.com/bkktransit/transit-coverage-go/internal/models"
)

// AnalysisRepository handles database operations for analysis run history
type AnalysisRepository struct {
	db *sql.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// InsertRun records a completed pipeline run.
func (r *AnalysisRepository) InsertRun(run *models.AnalysisRun) error {
	res, err := r.db.Exec(`
		INSERT INTO analysis_runs (
			station_count, coverage_sqkm, gap_count, zone_count,
			output_path, duration_ms
		) VALUES (?, ?, ?, ?, ?, ?)
	`, run.StationCount, run.CoverageSqKm, run.GapCount, run.ZoneCount,
		run.OutputPath, run.DurationMillis)
	if err != nil {
		return fmt.Errorf("failed to insert analysis run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read run id: %w", err)
	}
	run.ID = id
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (r *AnalysisRepository) ListRuns(limit int) ([]models.AnalysisRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(`
		SELECT id, run_at, station_count, coverage_sqkm, gap_count, zone_count,
			output_path, duration_ms
		FROM analysis_runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis runs: %w", err)
	}
	defer rows.Close()

	var runs []models.AnalysisRun
	for rows.Next() {
		var run models.AnalysisRun
		if err := rows.Scan(&run.ID, &run.RunAt, &run.StationCount, &run.CoverageSqKm,
			&run.GapCount, &run.ZoneCount, &run.OutputPath, &run.DurationMillis); err != nil {
			return nil, fmt.Errorf("failed to scan analysis run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// LatestRun returns the most recent run, or nil when none exist.
func (r *AnalysisRepository) LatestRun() (*models.AnalysisRun, error) {
	var run models.AnalysisRun
	err := r.db.QueryRow(`
		SELECT id, run_at, station_count, coverage_sqkm, gap_count, zone_count,
			output_path, duration_ms
		FROM analysis_runs
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&run.ID, &run.RunAt, &run.StationCount, &run.CoverageSqKm,
		&run.GapCount, &run.ZoneCount, &run.OutputPath, &run.DurationMillis)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest run: %w", err)
	}
	return &run, nil
}
