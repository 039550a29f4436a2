package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bkktransit/transit-coverage-go/internal/config"
	"github.com/bkktransit/transit-coverage-go/internal/handler"
	"github.com/bkktransit/transit-coverage-go/internal/metrics"
	"github.com/bkktransit/transit-coverage-go/internal/middleware"
)

// SetupRouter wires middlewares, handlers and the metrics endpoint.
func SetupRouter(cfg *config.Config, stationHandler *handler.StationHandler,
	analysisHandler *handler.AnalysisHandler, collector *metrics.Collector) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS: the viewer is a static page served from anywhere
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Transit Coverage API is running",
		})
	})

	r.GET("/metrics", gin.WrapH(collector.Handler()))

	api := r.Group("/api/v1")
	{
		api.GET("/coverage.geojson", analysisHandler.GetCoverageGeoJSON)

		stations := api.Group("/stations")
		{
			stations.GET("", stationHandler.GetStations)
			stations.GET("/:id", stationHandler.GetStationByID)
		}

		analysisGroup := api.Group("/analysis")
		{
			analysisGroup.GET("/summary", analysisHandler.GetSummary)
			analysisGroup.GET("/gaps", analysisHandler.GetGaps)
			analysisGroup.GET("/runs", analysisHandler.GetRuns)
			analysisGroup.POST("/run", middleware.Auth(cfg.JWTSecret), analysisHandler.RunAnalysis)
		}
	}

	return r
}
