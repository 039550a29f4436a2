package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/bkktransit/transit-coverage-go/internal/database"
	"github.com/bkktransit/transit-coverage-go/internal/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func sampleStations() []models.Station {
	return []models.Station{
		{ID: "N8", Name: "หมอชิต", NameEng: "Mo Chit", Lat: 13.802558, Lng: 100.553721,
			LineNameEng: "Sukhumvit", LineColorHex: "#7CB342", LineServiceName: "BTS"},
		{ID: "N7", Name: "สะพานควาย", NameEng: "Saphan Khwai", Lat: 13.793834, Lng: 100.549706,
			LineNameEng: "Sukhumvit", LineColorHex: "#7CB342", LineServiceName: "BTS"},
		{ID: "BL13", Name: "จตุจักร", NameEng: "Chatuchak Park", Lat: 13.802776, Lng: 100.552808,
			LineNameEng: "Blue Line", LineColorHex: "#1E4F91", LineServiceName: "MRT"},
	}
}

func TestStationRepositoryRoundTrip(t *testing.T) {
	repo := NewStationRepository(testDB(t))
	stations := sampleStations()

	require.NoError(t, repo.ReplaceAll(stations))

	got, err := repo.GetAll()
	require.NoError(t, err)

	// Insertion order must survive the round trip
	assert.Equal(t, stations, got)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, len(stations), n)
}

func TestStationRepositoryReplaceAllSwapsContents(t *testing.T) {
	repo := NewStationRepository(testDB(t))
	stations := sampleStations()

	require.NoError(t, repo.ReplaceAll(stations))
	require.NoError(t, repo.ReplaceAll(stations[:1]))

	got, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, stations[:1], got)
}

func TestStationRepositoryGetByID(t *testing.T) {
	repo := NewStationRepository(testDB(t))
	require.NoError(t, repo.ReplaceAll(sampleStations()))

	s, err := repo.GetByID("N7")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Saphan Khwai", s.NameEng)

	missing, err := repo.GetByID("X99")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAnalysisRepositoryRunHistory(t *testing.T) {
	repo := NewAnalysisRepository(testDB(t))

	run := &models.AnalysisRun{
		StationCount:   125,
		CoverageSqKm:   192.33,
		GapCount:       3,
		ZoneCount:      10,
		OutputPath:     "/tmp/coverage.geojson",
		DurationMillis: 840,
	}
	require.NoError(t, repo.InsertRun(run))
	assert.NotZero(t, run.ID)

	second := &models.AnalysisRun{StationCount: 125, CoverageSqKm: 192.33, OutputPath: "/tmp/coverage.geojson"}
	require.NoError(t, repo.InsertRun(second))

	latest, err := repo.LatestRun()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)

	runs, err := repo.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID, "newest first")
}

func TestAnalysisRepositoryEmptyHistory(t *testing.T) {
	repo := NewAnalysisRepository(testDB(t))

	latest, err := repo.LatestRun()
	require.NoError(t, err)
	assert.Nil(t, latest)
}
