package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "stationId,name,nameEng,geoLat,geoLng,lineNameEng,lineColorHex,lineServiceName\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadStations(t *testing.T) {
	path := writeCSV(t, header+
		"N8,หมอชิต,Mo Chit,13.802558,100.553721,Sukhumvit,#7CB342,BTS\n"+
		"N7,สะพานควาย,Saphan Khwai,13.793834,100.549706,Sukhumvit,#7CB342,BTS\n")

	stations, err := LoadStations(path)
	require.NoError(t, err)
	require.Len(t, stations, 2)

	// Input order is preserved; gap detection depends on it
	assert.Equal(t, "N8", stations[0].ID)
	assert.Equal(t, "Mo Chit", stations[0].NameEng)
	assert.Equal(t, "หมอชิต", stations[0].Name)
	assert.InDelta(t, 13.802558, stations[0].Lat, 1e-9)
	assert.InDelta(t, 100.553721, stations[0].Lng, 1e-9)
	assert.Equal(t, "Sukhumvit", stations[0].LineNameEng)
	assert.Equal(t, "#7CB342", stations[0].LineColorHex)
	assert.Equal(t, "BTS", stations[0].LineServiceName)
	assert.Equal(t, "N7", stations[1].ID)
}

func TestLoadStationsHeaderOrderFree(t *testing.T) {
	path := writeCSV(t, "geoLng,geoLat,stationId,name,nameEng,lineNameEng,lineColorHex,lineServiceName\n"+
		"100.553721,13.802558,N8,หมอชิต,Mo Chit,Sukhumvit,#7CB342,BTS\n")

	stations, err := LoadStations(path)
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "N8", stations[0].ID)
	assert.InDelta(t, 100.553721, stations[0].Lng, 1e-9)
}

func TestLoadStationsMissingFile(t *testing.T) {
	_, err := LoadStations(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadStationsMalformedRow(t *testing.T) {
	t.Run("non-numeric coordinate", func(t *testing.T) {
		path := writeCSV(t, header+
			"N8,หมอชิต,Mo Chit,13.802558,100.553721,Sukhumvit,#7CB342,BTS\n"+
			"N7,สะพานควาย,Saphan Khwai,not-a-number,100.549706,Sukhumvit,#7CB342,BTS\n")

		_, err := LoadStations(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 3", "error must name the offending row")
		assert.Contains(t, err.Error(), "geoLat")
	})

	t.Run("missing field", func(t *testing.T) {
		path := writeCSV(t, header+
			",หมอชิต,Mo Chit,13.802558,100.553721,Sukhumvit,#7CB342,BTS\n")

		_, err := LoadStations(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stationId")
	})

	t.Run("missing column", func(t *testing.T) {
		path := writeCSV(t, "stationId,name\nN8,หมอชิต\n")

		_, err := LoadStations(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing column")
	})
}

func TestLoadStationsEmptyFile(t *testing.T) {
	path := writeCSV(t, "")
	_, err := LoadStations(path)
	assert.Error(t, err)
}
