package main

import (
	"log"

	"github.com/bkktransit/transit-coverage-go/internal/api"
	"github.com/bkktransit/transit-coverage-go/internal/config"
	"github.com/bkktransit/transit-coverage-go/internal/database"
	"github.com/bkktransit/transit-coverage-go/internal/handler"
	"github.com/bkktransit/transit-coverage-go/internal/metrics"
	"github.com/bkktransit/transit-coverage-go/internal/repository"
	"github.com/bkktransit/transit-coverage-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	stationRepo := repository.NewStationRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)
	collector := metrics.NewCollector()

	stationService := service.NewStationService(stationRepo)
	analysisService := service.NewAnalysisService(stationRepo, analysisRepo, collector, cfg.OutputPath)

	if err := stationService.EnsureImported(cfg.DataPath); err != nil {
		log.Fatal("Failed to import station data:", err)
	}

	// Initial run so the viewer has an artifact from the first request on
	if _, err := analysisService.Run(); err != nil {
		log.Fatal("Initial analysis failed:", err)
	}

	stationHandler := handler.NewStationHandler(stationService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)

	router := api.SetupRouter(cfg, stationHandler, analysisHandler, collector)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
