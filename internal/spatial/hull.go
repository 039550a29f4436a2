package spatial

import "sort"

// ConvexHull computes the convex hull of a set of points using Andrew's
// monotone chain algorithm. Input points are deduplicated and sorted by
// (lng, lat); the result is in counter-clockwise order without the closing
// vertex. Fewer than 3 distinct points yield the distinct points themselves.
func ConvexHull(points []Point) []Point {
	// Deduplicate coincident coordinates
	seen := make(map[Point]bool, len(points))
	pts := make([]Point, 0, len(points))
	for _, p := range points {
		if !seen[p] {
			seen[p] = true
			pts = append(pts, p)
		}
	}

	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Lng != pts[j].Lng {
			return pts[i].Lng < pts[j].Lng
		}
		return pts[i].Lat < pts[j].Lat
	})

	if len(pts) <= 2 {
		return pts
	}

	lower := make([]Point, 0, len(pts))
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]Point, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Concatenate, dropping the duplicated endpoints
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// cross returns the z component of (a-o)×(b-o) in lng/lat space.
// Positive means o→a→b is a left turn.
func cross(o, a, b Point) float64 {
	return (a.Lng-o.Lng)*(b.Lat-o.Lat) - (a.Lat-o.Lat)*(b.Lng-o.Lng)
}
