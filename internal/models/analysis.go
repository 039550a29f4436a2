package models

import (
	"time"

	"github.com/bkktransit/transit-coverage-go/internal/spatial"
)

// Buffer is the walkable catchment ring around one station: a closed 64+1
// vertex polygon approximating a fixed-radius circle.
type Buffer struct {
	Station  Station         `json:"station"`
	RadiusKm float64         `json:"radius_km"`
	Ring     []spatial.Point `json:"ring"`
}

// CoverageEstimate is the grid-sampled approximation of the union area of all
// buffers. Cells exist only during estimation; only the tallies survive.
type CoverageEstimate struct {
	Rows         int     `json:"rows"`
	Cols         int     `json:"cols"`
	CellSizeKm   float64 `json:"cell_size_km"`
	CoveredCells int     `json:"covered_cells"`
	TotalCells   int     `json:"total_cells"`
	AreaSqKm     float64 `json:"area_sqkm"`
}

// Gap is a pair of consecutive same-line, same-branch stations spaced further
// apart than the desert threshold.
type Gap struct {
	Line       string  `json:"line"`
	Branch     string  `json:"branch"`
	From       Station `json:"from"`
	To         Station `json:"to"`
	DistanceKm float64 `json:"distance_km"`
}

// DesertZone is one of the most isolated sampled grid points: a location whose
// nearest station is further than the desert threshold. The square marker
// emitted for it is a visualization aid, not a precise isolation boundary.
type DesertZone struct {
	Rank      int     `json:"rank"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	NearestKm float64 `json:"nearest_station_km"`
}

// AnalysisRun records one completed pipeline execution.
type AnalysisRun struct {
	ID             int64     `json:"id" db:"id"`
	RunAt          time.Time `json:"run_at" db:"run_at"`
	StationCount   int       `json:"station_count" db:"station_count"`
	CoverageSqKm   float64   `json:"coverage_sqkm" db:"coverage_sqkm"`
	GapCount       int       `json:"gap_count" db:"gap_count"`
	ZoneCount      int       `json:"zone_count" db:"zone_count"`
	OutputPath     string    `json:"output_path" db:"output_path"`
	DurationMillis int64     `json:"duration_ms" db:"duration_ms"`
}
