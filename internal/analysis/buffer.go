package analysis

import (
	"math"

	"github.com/bkktransit/transit-coverage-go/internal/models"
	"github.com/bkktransit/transit-coverage-go/internal/spatial"
)

// Analysis constants. All derived layers are pure functions of the station set
// and these values.
const (
	BufferRadiusKm   = 1.0 // ~10-15 min walk
	BufferVertices   = 64
	CoverageCellKm   = 0.1 // 100 m coverage sampling grid
	ZoneCellKm       = 0.5 // 500 m desert sampling grid
	GapThresholdKm   = 5.0
	MaxDesertZones   = 10
	ZoneHalfWidthKm  = 0.25 // square marker half-width for desert zones
	coordPrecision   = 1e8  // ring coordinates rounded to 8 decimals
)

// BufferRing returns a closed ring of n+1 vertices approximating a circle of
// the given radius around center. The first vertex is repeated as the last per
// polygon convention.
func BufferRing(center spatial.Point, radiusKm float64, n int, proj spatial.Projection) []spatial.Point {
	dLat, dLng := proj.ToDegrees(radiusKm, radiusKm)

	ring := make([]spatial.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		ring = append(ring, spatial.Point{
			Lat: roundCoord(center.Lat + dLat*math.Sin(angle)),
			Lng: roundCoord(center.Lng + dLng*math.Cos(angle)),
		})
	}
	return ring
}

// BuildBuffers generates one catchment buffer per station.
func BuildBuffers(stations []models.Station, proj spatial.Projection) []models.Buffer {
	buffers := make([]models.Buffer, 0, len(stations))
	for _, s := range stations {
		buffers = append(buffers, models.Buffer{
			Station:  s,
			RadiusKm: BufferRadiusKm,
			Ring:     BufferRing(s.Position(), BufferRadiusKm, BufferVertices, proj),
		})
	}
	return buffers
}

func roundCoord(v float64) float64 {
	return math.Round(v*coordPrecision) / coordPrecision
}
