package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkktransit/transit-coverage-go/internal/models"
)

// Two stations 6.08 km apart on one line with nothing else around: exactly one
// gap at that distance, and coverage equal to two disjoint 1 km circles.
func TestRunTwoStationScenario(t *testing.T) {
	lat := 13.7456
	stations := []models.Station{
		station("N1", "Sukhumvit", lat, 100.5347),
		station("N2", "Sukhumvit", lat+6.08*degPerKmHaversine, 100.5347),
	}

	res, err := Run(stations)
	require.NoError(t, err)

	require.Len(t, res.Gaps, 1)
	g := res.Gaps[0]
	assert.InDelta(t, 6.08, g.DistanceKm, 0.01)
	assert.Equal(t, "N1", g.From.ID)
	assert.Equal(t, "N2", g.To.ID)
	assert.NotEmpty(t, g.From.NameEng)
	assert.NotEmpty(t, g.To.NameEng)

	assert.InDelta(t, 2*math.Pi, res.Coverage.AreaSqKm, 0.07)

	// Two distinct points cannot form a footprint; the layer is skipped
	assert.Nil(t, res.Footprint)

	// Nothing in the sampled box is further than 5 km from both stations
	assert.Empty(t, res.Zones)
}

func TestRunNoStations(t *testing.T) {
	_, err := Run(nil)
	assert.ErrorIs(t, err, ErrNoStations)
}

func TestRunDeterministic(t *testing.T) {
	stations := []models.Station{
		station("N1", "Sukhumvit", 13.70, 100.50),
		station("N2", "Sukhumvit", 13.95, 100.62),
		station("N3", "Sukhumvit", 13.60, 100.75),
	}

	a, err := Run(stations)
	require.NoError(t, err)
	b, err := Run(stations)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
