package service

import (
	"log"
	"sync"
	"time"

	"github.com/bkktransit/transit-coverage-go/internal/analysis"
	"github.com/bkktransit/transit-coverage-go/internal/export"
	"github.com/bkktransit/transit-coverage-go/internal/metrics"
	"github.com/bkktransit/transit-coverage-go/internal/models"
	"github.com/bkktransit/transit-coverage-go/internal/repository"
)

// AnalysisService runs the accessibility pipeline over the stored stations,
// writes the GeoJSON artifact and keeps the latest result cached for the API.
type AnalysisService struct {
	stations   *repository.StationRepository
	runs       *repository.AnalysisRepository
	collector  *metrics.Collector
	outputPath string

	mu     sync.RWMutex
	latest *analysis.Result
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(stations *repository.StationRepository, runs *repository.AnalysisRepository,
	collector *metrics.Collector, outputPath string) *AnalysisService {
	return &AnalysisService{
		stations:   stations,
		runs:       runs,
		collector:  collector,
		outputPath: outputPath,
	}
}

// Run executes the full pipeline and writes the artifact atomically. The run
// is recorded in history and the result cached. Recomputing from the same
// station set always yields the same output.
func (s *AnalysisService) Run() (*analysis.Result, error) {
	start := time.Now()

	stations, err := s.stations.GetAll()
	if err != nil {
		s.collector.AnalysisErrors.Inc()
		return nil, err
	}

	res, err := analysis.Run(stations)
	if err != nil {
		s.collector.AnalysisErrors.Inc()
		return nil, err
	}

	if err := export.Write(s.outputPath, res); err != nil {
		s.collector.AnalysisErrors.Inc()
		return nil, err
	}

	elapsed := time.Since(start)
	run := &models.AnalysisRun{
		StationCount:   len(stations),
		CoverageSqKm:   res.Coverage.AreaSqKm,
		GapCount:       len(res.Gaps),
		ZoneCount:      len(res.Zones),
		OutputPath:     s.outputPath,
		DurationMillis: elapsed.Milliseconds(),
	}
	if err := s.runs.InsertRun(run); err != nil {
		// History is bookkeeping; the artifact is already in place.
		log.Printf("[AnalysisService] Failed to record run: %v", err)
	}

	s.collector.AnalysisRuns.Inc()
	s.collector.AnalysisDuration.Observe(elapsed.Seconds())
	s.collector.CoverageSqKm.Set(res.Coverage.AreaSqKm)
	s.collector.StationsLoaded.Set(float64(len(stations)))

	s.mu.Lock()
	s.latest = res
	s.mu.Unlock()

	log.Printf("[AnalysisService] Run complete in %v: %.2f sq km coverage, %d gaps, %d zones",
		elapsed, res.Coverage.AreaSqKm, len(res.Gaps), len(res.Zones))
	return res, nil
}

// Latest returns the cached result of the most recent run, or nil.
func (s *AnalysisService) Latest() *analysis.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// OutputPath returns the artifact location.
func (s *AnalysisService) OutputPath() string {
	return s.outputPath
}

// History returns the most recent recorded runs, newest first.
func (s *AnalysisService) History(limit int) ([]models.AnalysisRun, error) {
	return s.runs.ListRuns(limit)
}
