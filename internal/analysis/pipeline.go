package analysis

import (
	"errors"
	"log"

	"github.com/bkktransit/transit-coverage-go/internal/models"
	"github.com/bkktransit/transit-coverage-go/internal/spatial"
)

// ErrNoStations is returned when the pipeline is run with an empty station set.
var ErrNoStations = errors.New("no stations to analyze")

// Result holds every derived layer of one pipeline run. All layers are pure
// functions of the station set, so rerunning on identical input yields an
// identical Result.
type Result struct {
	Stations   []models.Station
	Projection spatial.Projection
	Buffers    []models.Buffer
	Coverage   models.CoverageEstimate
	Gaps       []models.Gap
	Zones      []models.DesertZone
	Footprint  []spatial.Point // closed ring; nil when skipped
}

// Run executes the full pipeline: buffers, coverage estimate, desert gaps and
// zones, and the network footprint. Degenerate layers are skipped and the rest
// computed, since each layer is independent.
func Run(stations []models.Station) (*Result, error) {
	if len(stations) == 0 {
		return nil, ErrNoStations
	}

	proj := spatial.NewProjection(spatial.Centroid(models.Positions(stations)).Lat)

	res := &Result{
		Stations:   stations,
		Projection: proj,
	}

	res.Buffers = BuildBuffers(stations, proj)
	log.Printf("[Pipeline] Built %d buffer polygons (%.1f km radius, %d vertices)",
		len(res.Buffers), BufferRadiusKm, BufferVertices)

	res.Coverage = EstimateCoverage(res.Buffers, proj)
	log.Printf("[Pipeline] Coverage: %d/%d cells covered over %dx%d grid => %.2f sq km",
		res.Coverage.CoveredCells, res.Coverage.TotalCells,
		res.Coverage.Rows, res.Coverage.Cols, res.Coverage.AreaSqKm)

	res.Gaps = DetectGaps(stations)
	res.Zones = DetectZones(stations, proj)
	log.Printf("[Pipeline] Deserts: %d gaps > %.0f km, %d isolated zones",
		len(res.Gaps), GapThresholdKm, len(res.Zones))

	if ring, ok := Footprint(stations); ok {
		res.Footprint = ring
	} else {
		log.Printf("[Pipeline] Footprint skipped: fewer than 3 distinct station positions")
	}

	return res, nil
}
