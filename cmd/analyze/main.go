package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bkktransit/transit-coverage-go/internal/analysis"
	"github.com/bkktransit/transit-coverage-go/internal/export"
	"github.com/bkktransit/transit-coverage-go/internal/ingest"
)

// analyze is the batch entrypoint: read the station CSV, compute every derived
// layer in sequence, write one GeoJSON artifact and print a summary. It either
// runs to completion or fails outright; rerunning is the only recovery.
func main() {
	dataPath := flag.String("data", "./data/stations.csv", "station CSV path")
	outPath := flag.String("out", "./coverage.geojson", "output GeoJSON path")
	flag.Parse()

	stations, err := ingest.LoadStations(*dataPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded %d stations from %s", len(stations), *dataPath)

	res, err := analysis.Run(stations)
	if err != nil {
		log.Fatal(err)
	}

	if err := export.Write(*outPath, res); err != nil {
		log.Fatal(err)
	}
	log.Printf("GeoJSON written to %s", *outPath)

	printSummary(res)
}

func printSummary(res *analysis.Result) {
	w := os.Stdout

	fmt.Fprintln(w, "=== TRANSIT COVERAGE SUMMARY ===")
	fmt.Fprintf(w, "  Stations analysed : %d\n", len(res.Stations))
	fmt.Fprintf(w, "  Buffer radius     : %.1f km\n", analysis.BufferRadiusKm)
	fmt.Fprintf(w, "  Grid resolution   : %.0f m\n", analysis.CoverageCellKm*1000)
	fmt.Fprintf(w, "  Covered cells     : %d / %d\n", res.Coverage.CoveredCells, res.Coverage.TotalCells)
	fmt.Fprintf(w, "  Transit coverage  : %.2f sq km\n", res.Coverage.AreaSqKm)

	fmt.Fprintf(w, "=== TRANSIT DESERTS (gaps > %.0f km) ===\n", analysis.GapThresholdKm)
	if len(res.Gaps) == 0 {
		fmt.Fprintln(w, "  No consecutive gaps found on any line.")
	}
	for _, g := range res.Gaps {
		fmt.Fprintf(w, "  %s (%s-branch): %s -> %s (%.2f km)\n",
			g.Line, g.Branch, g.From.NameEng, g.To.NameEng, g.DistanceKm)
	}

	if len(res.Zones) > 0 {
		fmt.Fprintln(w, "  Top isolated zones (furthest from any station):")
		for _, z := range res.Zones {
			fmt.Fprintf(w, "    #%d (%.4f, %.4f) - %.2f km to nearest station\n",
				z.Rank, z.Lat, z.Lng, z.NearestKm)
		}
	}
}
