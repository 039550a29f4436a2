package handler

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bkktransit/transit-coverage-go/internal/export"
	"github.com/bkktransit/transit-coverage-go/internal/service"
	"github.com/bkktransit/transit-coverage-go/pkg/response"
)

// AnalysisHandler handles HTTP requests for the accessibility analysis
type AnalysisHandler struct {
	service *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// GetCoverageGeoJSON handles GET /api/v1/coverage.geojson
// It serves the completed artifact file so the viewer reads exactly what the
// last run wrote, never a partially built document.
func (h *AnalysisHandler) GetCoverageGeoJSON(c *gin.Context) {
	path := h.service.OutputPath()
	if _, err := os.Stat(path); err != nil {
		response.NotFound(c, "No analysis artifact available yet")
		return
	}
	c.Header("Content-Type", "application/geo+json")
	c.File(path)
}

// GetSummary handles GET /api/v1/analysis/summary
func (h *AnalysisHandler) GetSummary(c *gin.Context) {
	res := h.service.Latest()
	if res == nil {
		response.NotFound(c, "No analysis has been run yet")
		return
	}

	response.Success(c, gin.H{
		"metadata": export.BuildMetadata(res),
		"coverage": res.Coverage,
		"zones":    res.Zones,
	})
}

// GetGaps handles GET /api/v1/analysis/gaps
func (h *AnalysisHandler) GetGaps(c *gin.Context) {
	res := h.service.Latest()
	if res == nil {
		response.NotFound(c, "No analysis has been run yet")
		return
	}

	response.Success(c, gin.H{
		"data":  res.Gaps,
		"count": len(res.Gaps),
	})
}

// GetRuns handles GET /api/v1/analysis/runs
func (h *AnalysisHandler) GetRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	runs, err := h.service.History(limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get run history")
		return
	}

	response.Success(c, gin.H{
		"data":  runs,
		"count": len(runs),
	})
}

// RunAnalysis handles POST /api/v1/analysis/run (authenticated)
func (h *AnalysisHandler) RunAnalysis(c *gin.Context) {
	res, err := h.service.Run()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	response.Success(c, gin.H{
		"coverage_sqkm": res.Coverage.AreaSqKm,
		"stations":      len(res.Stations),
		"gaps":          len(res.Gaps),
		"zones":         len(res.Zones),
	})
}
