package analysis

import (
	"math"

	"github.com/bkktransit/transit-coverage-go/internal/models"
	"github.com/bkktransit/transit-coverage-go/internal/spatial"
)

// bufferBounds pairs a buffer ring with its bounding box so the grid scan can
// skip rings that cannot possibly contain a cell center.
type bufferBounds struct {
	ring                           []spatial.Point
	minLat, minLng, maxLat, maxLng float64
}

// EstimateCoverage grid-samples the bounding box of all buffer rings at 100 m
// resolution and counts cells whose center lies inside at least one ring.
//
// This is a deliberate sampling approximation (~1% at this resolution) chosen
// over exact polygon-union geometry; the trade-off is part of the contract and
// must not be tightened into exact math.
func EstimateCoverage(buffers []models.Buffer, proj spatial.Projection) models.CoverageEstimate {
	if len(buffers) == 0 {
		return models.CoverageEstimate{CellSizeKm: CoverageCellKm}
	}

	minLat, minLng, maxLat, maxLng := bufferBBox(buffers)

	rows := int(math.Ceil((maxLat - minLat) * proj.KmPerDegLat / CoverageCellKm))
	cols := int(math.Ceil((maxLng - minLng) * proj.KmPerDegLng / CoverageCellKm))

	bounds := make([]bufferBounds, len(buffers))
	for i, b := range buffers {
		bMinLat, bMinLng, bMaxLat, bMaxLng := spatial.BoundingBox(b.Ring)
		bounds[i] = bufferBounds{
			ring:   b.Ring,
			minLat: bMinLat, minLng: bMinLng,
			maxLat: bMaxLat, maxLng: bMaxLng,
		}
	}

	covered := 0
	for r := 0; r < rows; r++ {
		yKm := float64(r)*CoverageCellKm + CoverageCellKm/2
		lat := minLat + yKm/proj.KmPerDegLat
		for c := 0; c < cols; c++ {
			xKm := float64(c)*CoverageCellKm + CoverageCellKm/2
			lng := minLng + xKm/proj.KmPerDegLng

			center := spatial.Point{Lat: lat, Lng: lng}
			for _, b := range bounds {
				if lat < b.minLat || lat > b.maxLat || lng < b.minLng || lng > b.maxLng {
					continue
				}
				if spatial.PointInPolygon(center, b.ring) {
					covered++
					break // covered once; never double-counted
				}
			}
		}
	}

	return models.CoverageEstimate{
		Rows:         rows,
		Cols:         cols,
		CellSizeKm:   CoverageCellKm,
		CoveredCells: covered,
		TotalCells:   rows * cols,
		AreaSqKm:     float64(covered) * CoverageCellKm * CoverageCellKm,
	}
}

// bufferBBox returns the bounding box over every vertex of every ring, with no
// extra padding.
func bufferBBox(buffers []models.Buffer) (minLat, minLng, maxLat, maxLng float64) {
	minLat, minLng, maxLat, maxLng = spatial.BoundingBox(buffers[0].Ring)
	for _, b := range buffers[1:] {
		bMinLat, bMinLng, bMaxLat, bMaxLng := spatial.BoundingBox(b.Ring)
		minLat = math.Min(minLat, bMinLat)
		minLng = math.Min(minLng, bMinLng)
		maxLat = math.Max(maxLat, bMaxLat)
		maxLng = math.Max(maxLng, bMaxLng)
	}
	return
}
