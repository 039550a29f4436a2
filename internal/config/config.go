package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds service configuration. Analysis constants (buffer radius, grid
// resolutions, gap threshold) are fixed by contract and deliberately not
// configurable.
type Config struct {
	Port       string
	DBPath     string
	DataPath   string // station CSV
	OutputPath string // coverage.geojson artifact
	JWTSecret  string
}

// Load reads configuration from the environment, with a .env file as fallback.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:       getenvDefault("PORT", ":8080"),
		DBPath:     getenvDefault("DB_PATH", "./data/coverage.db"),
		DataPath:   getenvDefault("DATA_PATH", "./data/stations.csv"),
		OutputPath: getenvDefault("OUTPUT_PATH", "./data/coverage.geojson"),
		JWTSecret:  getenvDefault("JWT_SECRET", "change-me-in-production"),
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
