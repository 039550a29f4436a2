package export

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/bkktransit/transit-coverage-go/internal/analysis"
	"github.com/bkktransit/transit-coverage-go/internal/spatial"
)

// Feature type discriminators carried in properties.type. The viewer styles
// each layer off this value and nothing else.
const (
	TypeStation   = "station"
	TypeBuffer    = "buffer_1km"
	TypeFootprint = "network_footprint"
	TypeGap       = "transit_desert_gap"
	TypeZone      = "transit_desert_zone"
)

// Metadata is the top-level summary block of the emitted FeatureCollection.
type Metadata struct {
	Title               string       `json:"title"`
	Description         string       `json:"description"`
	TransitCoverageSqKm float64      `json:"transit_coverage_sqkm"`
	TotalStations       int          `json:"total_stations"`
	BufferRadiusKm      float64      `json:"buffer_radius_km"`
	GapThresholdKm      float64      `json:"gap_threshold_km"`
	TransitDesertGaps   []GapSummary `json:"transit_desert_gaps"`
}

// GapSummary is the metadata entry for one detected gap.
type GapSummary struct {
	Line       string  `json:"line"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
}

// Build assembles the analysis result into one GeoJSON FeatureCollection:
// the network footprint, a Point and buffer Polygon per station, a LineString
// per gap and a Polygon per desert zone, plus the metadata block.
func Build(res *analysis.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if res.Footprint != nil {
		f := geojson.NewFeature(orb.Polygon{toRing(res.Footprint)})
		f.Properties = geojson.Properties{
			"type":        TypeFootprint,
			"description": "Convex hull of all rail stations (network extent)",
			"color":       "#1E90FF",
			"fillOpacity": 0.05,
		}
		fc.Append(f)
	}

	for _, b := range res.Buffers {
		s := b.Station

		point := geojson.NewFeature(orb.Point{s.Lng, s.Lat})
		point.Properties = geojson.Properties{
			"type":      TypeStation,
			"stationId": s.ID,
			"name":      s.NameEng,
			"nameTH":    s.Name,
			"line":      s.LineNameEng,
			"service":   s.LineServiceName,
			"color":     s.LineColorHex,
		}
		fc.Append(point)

		buffer := geojson.NewFeature(orb.Polygon{toRing(b.Ring)})
		buffer.Properties = geojson.Properties{
			"type":      TypeBuffer,
			"stationId": s.ID,
			"name":      s.NameEng,
			"line":      s.LineNameEng,
			"color":     s.LineColorHex,
			"radius_km": b.RadiusKm,
		}
		fc.Append(buffer)
	}

	for _, g := range res.Gaps {
		f := geojson.NewFeature(orb.LineString{
			{g.From.Lng, g.From.Lat},
			{g.To.Lng, g.To.Lat},
		})
		f.Properties = geojson.Properties{
			"type":         TypeGap,
			"line":         g.Line,
			"from_station": g.From.NameEng,
			"to_station":   g.To.NameEng,
			"gap_km":       round2(g.DistanceKm),
			"color":        "#FF0000",
		}
		fc.Append(f)
	}

	for _, z := range res.Zones {
		f := geojson.NewFeature(orb.Polygon{toRing(analysis.ZoneRing(z, res.Projection))})
		f.Properties = geojson.Properties{
			"type":               TypeZone,
			"rank":               z.Rank,
			"nearest_station_km": round2(z.NearestKm),
			"color":              "#FF4444",
			"fillOpacity":        0.15,
		}
		fc.Append(f)
	}

	fc.ExtraMembers = geojson.Properties{
		"metadata": BuildMetadata(res),
	}
	return fc
}

// BuildMetadata assembles the summary statistics block.
func BuildMetadata(res *analysis.Result) Metadata {
	gaps := make([]GapSummary, 0, len(res.Gaps))
	for _, g := range res.Gaps {
		gaps = append(gaps, GapSummary{
			Line:       fmt.Sprintf("%s (%s-branch)", g.Line, g.Branch),
			From:       g.From.NameEng,
			To:         g.To.NameEng,
			DistanceKm: round2(g.DistanceKm),
		})
	}
	return Metadata{
		Title:               "Bangkok Rail Network – Spatial Accessibility Analysis",
		Description:         "1 km station buffers (~10-15 min walk), transit desert gaps, and network coverage footprint.",
		TransitCoverageSqKm: round2(res.Coverage.AreaSqKm),
		TotalStations:       len(res.Stations),
		BufferRadiusKm:      analysis.BufferRadiusKm,
		GapThresholdKm:      analysis.GapThresholdKm,
		TransitDesertGaps:   gaps,
	}
}

// Write marshals the FeatureCollection and writes it atomically: the document
// is staged to a temp file in the target directory and renamed into place, so
// the viewer never observes a partial artifact.
func Write(path string, res *analysis.Result) error {
	fc := Build(res)

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal feature collection: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".coverage-*.geojson")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

// toRing converts a closed lat/lng ring to GeoJSON [lng, lat] order.
func toRing(pts []spatial.Point) orb.Ring {
	ring := make(orb.Ring, len(pts))
	for i, p := range pts {
		ring[i] = orb.Point{p.Lng, p.Lat}
	}
	return ring
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
