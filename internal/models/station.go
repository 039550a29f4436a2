package models

import (
	"github.com/bkktransit/transit-coverage-go/internal/spatial"
)

// Station represents one physical rail station. Records are immutable once
// loaded; uniqueness is by station ID.
type Station struct {
	ID              string  `json:"station_id" db:"station_id"`
	Name            string  `json:"name" db:"name"`           // Local (Thai) name
	NameEng         string  `json:"name_eng" db:"name_eng"`   // English name
	Lat             float64 `json:"lat" db:"lat"`
	Lng             float64 `json:"lng" db:"lng"`
	LineNameEng     string  `json:"line" db:"line_name_eng"`
	LineColorHex    string  `json:"color" db:"line_color_hex"`
	LineServiceName string  `json:"service" db:"line_service_name"`
}

// Position returns the station location as a spatial point.
func (s Station) Position() spatial.Point {
	return spatial.Point{Lat: s.Lat, Lng: s.Lng}
}

// BranchKey extracts the branch prefix from the station ID, e.g. "N" from
// "N24" or "BL" from "BL01". Different prefixes on the same line are separate
// branches meeting at an interchange and must not be treated as consecutive.
func (s Station) BranchKey() string {
	i := 0
	for i < len(s.ID) && s.ID[i] >= 'A' && s.ID[i] <= 'Z' {
		i++
	}
	if i == 0 {
		return s.ID
	}
	return s.ID[:i]
}

// Positions extracts the positions of a station slice in order.
func Positions(stations []Station) []spatial.Point {
	pts := make([]spatial.Point, len(stations))
	for i, s := range stations {
		pts[i] = s.Position()
	}
	return pts
}
