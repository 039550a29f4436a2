package service

import (
	"fmt"
	"log"

	"github.com/bkktransit/transit-coverage-go/internal/ingest"
	"github.com/bkktransit/transit-coverage-go/internal/models"
	"github.com/bkktransit/transit-coverage-go/internal/repository"
)

// StationService handles business logic for stations
type StationService struct {
	repo *repository.StationRepository
}

// NewStationService creates a new station service
func NewStationService(repo *repository.StationRepository) *StationService {
	return &StationService{repo: repo}
}

// ImportCSV loads the station CSV and replaces the stored station set.
// Any malformed row aborts the import before the store is touched.
func (s *StationService) ImportCSV(path string) (int, error) {
	stations, err := ingest.LoadStations(path)
	if err != nil {
		return 0, err
	}
	if err := s.repo.ReplaceAll(stations); err != nil {
		return 0, fmt.Errorf("failed to store stations: %w", err)
	}
	log.Printf("[StationService] Imported %d stations from %s", len(stations), path)
	return len(stations), nil
}

// EnsureImported imports the CSV only when the station table is empty.
func (s *StationService) EnsureImported(path string) error {
	n, err := s.repo.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("[StationService] %d stations already stored, skipping import", n)
		return nil
	}
	_, err = s.ImportCSV(path)
	return err
}

// GetStations retrieves every station in input order.
func (s *StationService) GetStations() ([]models.Station, error) {
	return s.repo.GetAll()
}

// GetStationByID retrieves one station, or nil when unknown.
func (s *StationService) GetStationByID(id string) (*models.Station, error) {
	return s.repo.GetByID(id)
}
