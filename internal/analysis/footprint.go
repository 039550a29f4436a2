package analysis

import (
	"github.com/bkktransit/transit-coverage-go/internal/models"
	"github.com/bkktransit/transit-coverage-go/internal/spatial"
)

// Footprint computes the network footprint: the convex hull over all station
// positions, returned as a closed ring. Returns false when fewer than 3
// distinct positions exist; the layer is skipped in that case.
func Footprint(stations []models.Station) ([]spatial.Point, bool) {
	hull := spatial.ConvexHull(models.Positions(stations))
	if len(hull) < 3 {
		return nil, false
	}
	ring := make([]spatial.Point, 0, len(hull)+1)
	ring = append(ring, hull...)
	ring = append(ring, hull[0])
	return ring, true
}
