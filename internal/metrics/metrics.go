package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector groups the service metrics on a private registry so the /metrics
// endpoint exposes only what this service owns.
type Collector struct {
	reg *prometheus.Registry

	AnalysisRuns     prometheus.Counter
	AnalysisErrors   prometheus.Counter
	AnalysisDuration prometheus.Histogram

	CoverageSqKm   prometheus.Gauge
	StationsLoaded prometheus.Gauge
}

// NewCollector creates and registers the service metrics.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		AnalysisRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coverage_analysis_runs_total",
			Help: "Total completed analysis pipeline runs.",
		}),
		AnalysisErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coverage_analysis_errors_total",
			Help: "Total failed analysis pipeline runs.",
		}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "coverage_analysis_duration_seconds",
			Help:    "Wall time of one full pipeline run.",
			Buckets: prometheus.DefBuckets,
		}),
		CoverageSqKm: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "coverage_estimated_sqkm",
			Help: "Estimated transit coverage from the latest run, in square kilometers.",
		}),
		StationsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "coverage_stations_loaded",
			Help: "Stations analyzed in the latest run.",
		}),
	}

	reg.MustRegister(
		c.AnalysisRuns,
		c.AnalysisErrors,
		c.AnalysisDuration,
		c.CoverageSqKm,
		c.StationsLoaded,
	)
	return c
}

// Handler returns the HTTP handler serving the registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
