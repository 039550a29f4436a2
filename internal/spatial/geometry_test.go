package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentroid(t *testing.T) {
	pts := []Point{
		{Lat: 13.0, Lng: 100.0},
		{Lat: 14.0, Lng: 101.0},
	}
	c := Centroid(pts)
	assert.InDelta(t, 13.5, c.Lat, 1e-12)
	assert.InDelta(t, 100.5, c.Lng, 1e-12)

	assert.Equal(t, Point{}, Centroid(nil))
}

func TestBoundingBox(t *testing.T) {
	pts := []Point{
		{Lat: 13.5, Lng: 100.7},
		{Lat: 13.9, Lng: 100.3},
		{Lat: 13.2, Lng: 100.9},
	}
	minLat, minLng, maxLat, maxLng := BoundingBox(pts)

	assert.Equal(t, 13.2, minLat)
	assert.Equal(t, 100.3, minLng)
	assert.Equal(t, 13.9, maxLat)
	assert.Equal(t, 100.9, maxLng)
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 2},
		{Lat: 2, Lng: 2},
		{Lat: 2, Lng: 0},
	}

	t.Run("inside", func(t *testing.T) {
		assert.True(t, PointInPolygon(Point{Lat: 1, Lng: 1}, square))
	})

	t.Run("outside", func(t *testing.T) {
		assert.False(t, PointInPolygon(Point{Lat: 3, Lng: 1}, square))
		assert.False(t, PointInPolygon(Point{Lat: -1, Lng: -1}, square))
	})

	t.Run("closed ring gives same answer", func(t *testing.T) {
		closed := append(append([]Point{}, square...), square[0])
		assert.True(t, PointInPolygon(Point{Lat: 1, Lng: 1}, closed))
		assert.False(t, PointInPolygon(Point{Lat: 3, Lng: 1}, closed))
	})

	t.Run("degenerate polygon", func(t *testing.T) {
		assert.False(t, PointInPolygon(Point{Lat: 1, Lng: 1}, square[:2]))
	})
}
