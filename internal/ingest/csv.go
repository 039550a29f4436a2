package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/bkktransit/transit-coverage-go/internal/models"
)

// Required columns of the station table. Header order is free; names are not.
var requiredColumns = []string{
	"stationId", "name", "nameEng", "geoLat", "geoLng",
	"lineNameEng", "lineColorHex", "lineServiceName",
}

// LoadStations reads the station CSV at path. A missing or unreadable file and
// any malformed row (missing field, non-numeric coordinate) are fatal for the
// run: the error names the offending row and nothing is returned.
func LoadStations(path string) ([]models.Station, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open station data: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse station data: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("station data %s is empty", path)
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("station data is missing column %q", name)
		}
	}

	stations := make([]models.Station, 0, len(records)-1)
	for i, row := range records[1:] {
		rowNum := i + 2 // 1-based, counting the header

		field := func(name string) string { return row[col[name]] }

		for _, name := range requiredColumns {
			if name != "name" && field(name) == "" {
				return nil, fmt.Errorf("row %d: missing required field %q", rowNum, name)
			}
		}

		lat, err := strconv.ParseFloat(field("geoLat"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid geoLat %q", rowNum, field("geoLat"))
		}
		lng, err := strconv.ParseFloat(field("geoLng"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid geoLng %q", rowNum, field("geoLng"))
		}

		stations = append(stations, models.Station{
			ID:              field("stationId"),
			Name:            field("name"),
			NameEng:         field("nameEng"),
			Lat:             lat,
			Lng:             lng,
			LineNameEng:     field("lineNameEng"),
			LineColorHex:    field("lineColorHex"),
			LineServiceName: field("lineServiceName"),
		})
	}
	return stations, nil
}
