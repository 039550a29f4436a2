package analysis

import (
	"math"
	"sort"

	"github.com/bkktransit/transit-coverage-go/internal/models"
	"github.com/bkktransit/transit-coverage-go/internal/spatial"
)

// DetectGaps finds pairs of consecutive stations on the same line and branch
// whose great-circle distance strictly exceeds the gap threshold. Stations are
// grouped by (line, branch prefix) preserving input order, which is assumed to
// reflect physical sequence along each branch. Gaps are never merged across
// lines or branches.
func DetectGaps(stations []models.Station) []models.Gap {
	type groupKey struct {
		line, branch string
	}

	var order []groupKey
	groups := make(map[groupKey][]models.Station)
	for _, s := range stations {
		key := groupKey{line: s.LineNameEng, branch: s.BranchKey()}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], s)
	}

	var gaps []models.Gap
	for _, key := range order {
		group := groups[key]
		for i := 0; i+1 < len(group); i++ {
			a, b := group[i], group[i+1]
			dist := spatial.HaversineKm(a.Position(), b.Position())
			if dist > GapThresholdKm {
				gaps = append(gaps, models.Gap{
					Line:       key.line,
					Branch:     key.branch,
					From:       a,
					To:         b,
					DistanceKm: dist,
				})
			}
		}
	}
	return gaps
}

// DetectZones re-samples the buffer bounding box at 500 m resolution and keeps
// the grid points whose planar distance to the nearest station exceeds the gap
// threshold, sorted by isolation distance descending. At most MaxDesertZones
// are returned; ties keep row-major scan order so the result is deterministic.
func DetectZones(stations []models.Station, proj spatial.Projection) []models.DesertZone {
	if len(stations) == 0 {
		return nil
	}

	minLat, minLng, maxLat, maxLng := spatial.BoundingBox(models.Positions(stations))
	padLat, padLng := proj.ToDegrees(BufferRadiusKm, BufferRadiusKm)
	minLat -= padLat
	maxLat += padLat
	minLng -= padLng
	maxLng += padLng

	rows := int(math.Ceil((maxLat - minLat) * proj.KmPerDegLat / ZoneCellKm))
	cols := int(math.Ceil((maxLng - minLng) * proj.KmPerDegLng / ZoneCellKm))

	// Station positions in km-space relative to the bbox origin
	type kmPoint struct{ y, x float64 }
	stationsKm := make([]kmPoint, len(stations))
	for i, s := range stations {
		stationsKm[i] = kmPoint{
			y: (s.Lat - minLat) * proj.KmPerDegLat,
			x: (s.Lng - minLng) * proj.KmPerDegLng,
		}
	}

	var zones []models.DesertZone
	for r := 0; r < rows; r++ {
		yKm := float64(r)*ZoneCellKm + ZoneCellKm/2
		for c := 0; c < cols; c++ {
			xKm := float64(c)*ZoneCellKm + ZoneCellKm/2

			nearest := math.MaxFloat64
			for _, s := range stationsKm {
				dy, dx := yKm-s.y, xKm-s.x
				if d := math.Sqrt(dy*dy + dx*dx); d < nearest {
					nearest = d
				}
			}

			if nearest > GapThresholdKm {
				zones = append(zones, models.DesertZone{
					Lat:       minLat + yKm/proj.KmPerDegLat,
					Lng:       minLng + xKm/proj.KmPerDegLng,
					NearestKm: nearest,
				})
			}
		}
	}

	sort.SliceStable(zones, func(i, j int) bool {
		return zones[i].NearestKm > zones[j].NearestKm
	})
	if len(zones) > MaxDesertZones {
		zones = zones[:MaxDesertZones]
	}
	for i := range zones {
		zones[i].Rank = i + 1
	}
	return zones
}

// ZoneRing returns the closed square marker ring for a desert zone.
func ZoneRing(z models.DesertZone, proj spatial.Projection) []spatial.Point {
	dLat, dLng := proj.ToDegrees(ZoneHalfWidthKm, ZoneHalfWidthKm)
	return []spatial.Point{
		{Lat: z.Lat - dLat, Lng: z.Lng - dLng},
		{Lat: z.Lat - dLat, Lng: z.Lng + dLng},
		{Lat: z.Lat + dLat, Lng: z.Lng + dLng},
		{Lat: z.Lat + dLat, Lng: z.Lng - dLng},
		{Lat: z.Lat - dLat, Lng: z.Lng - dLng},
	}
}
