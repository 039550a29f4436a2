package spatial

import "math"

// At the Bangkok study area (~13.7°N) one degree of latitude spans 110.574 km
// and one degree of longitude 111.320·cos(13.7°) ≈ 107.551 km.
const (
	kmPerDegLat     = 110.574
	kmPerDegLngAtEq = 111.320
)

// Projection holds local equirectangular scale factors for a reference
// latitude. It converts small lat/lng offsets to and from kilometres and is
// only valid over the narrow latitude band of a single metro area — it is not
// a geodesic solver.
type Projection struct {
	KmPerDegLat float64
	KmPerDegLng float64
}

// NewProjection returns the scale factors for the given reference latitude.
func NewProjection(refLat float64) Projection {
	return Projection{
		KmPerDegLat: kmPerDegLat,
		KmPerDegLng: kmPerDegLngAtEq * math.Cos(refLat*math.Pi/180),
	}
}

// ToKm converts degree offsets to kilometre offsets.
func (p Projection) ToKm(dLat, dLng float64) (float64, float64) {
	return dLat * p.KmPerDegLat, dLng * p.KmPerDegLng
}

// ToDegrees converts kilometre offsets to degree offsets.
func (p Projection) ToDegrees(dyKm, dxKm float64) (float64, float64) {
	return dyKm / p.KmPerDegLat, dxKm / p.KmPerDegLng
}

// PlanarDistanceKm returns the straight-line distance between two points in
// kilometre space. Good to well under 1% across a metro-sized area.
func (p Projection) PlanarDistanceKm(a, b Point) float64 {
	dy := (a.Lat - b.Lat) * p.KmPerDegLat
	dx := (a.Lng - b.Lng) * p.KmPerDegLng
	return math.Sqrt(dy*dy + dx*dx)
}
