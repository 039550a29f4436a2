package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkktransit/transit-coverage-go/internal/models"
	"github.com/bkktransit/transit-coverage-go/internal/spatial"
)

func TestBufferRingClosure(t *testing.T) {
	proj := spatial.NewProjection(13.7)
	center := spatial.Point{Lat: 13.7456, Lng: 100.5347}

	ring := BufferRing(center, BufferRadiusKm, BufferVertices, proj)

	require.Len(t, ring, BufferVertices+1)
	assert.Equal(t, ring[0], ring[len(ring)-1], "ring must be explicitly closed")
}

func TestBufferRingCenteredAtRadius(t *testing.T) {
	proj := spatial.NewProjection(13.7)
	center := spatial.Point{Lat: 13.7456, Lng: 100.5347}

	ring := BufferRing(center, BufferRadiusKm, BufferVertices, proj)

	for i, v := range ring {
		d := proj.PlanarDistanceKm(center, v)
		// 8-decimal coordinate rounding moves a vertex by well under a meter
		assert.InDelta(t, BufferRadiusKm, d, 1e-5, "vertex %d", i)
	}
}

func TestBufferRingContainsCenter(t *testing.T) {
	proj := spatial.NewProjection(13.7)
	center := spatial.Point{Lat: 13.7456, Lng: 100.5347}

	ring := BufferRing(center, BufferRadiusKm, BufferVertices, proj)

	assert.True(t, spatial.PointInPolygon(center, ring))
	outside := spatial.Point{Lat: center.Lat + 2.0/proj.KmPerDegLat, Lng: center.Lng}
	assert.False(t, spatial.PointInPolygon(outside, ring))
}

func TestBuildBuffers(t *testing.T) {
	proj := spatial.NewProjection(13.7)
	stations := []models.Station{
		{ID: "N1", NameEng: "Mo Chit", Lat: 13.8025, Lng: 100.5537},
		{ID: "N2", NameEng: "Saphan Khwai", Lat: 13.7937, Lng: 100.5497},
	}

	buffers := BuildBuffers(stations, proj)

	require.Len(t, buffers, 2)
	for i, b := range buffers {
		assert.Equal(t, stations[i].ID, b.Station.ID)
		assert.Equal(t, BufferRadiusKm, b.RadiusKm)
		assert.Len(t, b.Ring, BufferVertices+1)
	}
}
