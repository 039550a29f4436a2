package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bkktransit/transit-coverage-go/internal/service"
	"github.com/bkktransit/transit-coverage-go/pkg/response"
)

// StationHandler handles HTTP requests for stations
type StationHandler struct {
	service *service.StationService
}

// NewStationHandler creates a new station handler
func NewStationHandler(service *service.StationService) *StationHandler {
	return &StationHandler{service: service}
}

// GetStations handles GET /api/v1/stations
func (h *StationHandler) GetStations(c *gin.Context) {
	stations, err := h.service.GetStations()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get stations")
		return
	}

	response.Success(c, gin.H{
		"data":  stations,
		"count": len(stations),
	})
}

// GetStationByID handles GET /api/v1/stations/:id
func (h *StationHandler) GetStationByID(c *gin.Context) {
	station, err := h.service.GetStationByID(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get station")
		return
	}
	if station == nil {
		response.NotFound(c, "Station not found")
		return
	}

	response.Success(c, station)
}
