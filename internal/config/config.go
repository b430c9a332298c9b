package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ReferenceTablePath string
	ReferenceName      string
	EurModelDir        string
	EarthModelDir      string
	OutputPath         string
	Country            string
	MapZoom            int
}

// Load returns the run configuration. The defaults reproduce the fixed
// relative paths of the published analysis, so a plain no-argument run
// works from a checkout with the data/ directory in place.
func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ReferenceTablePath: getEnv("GRID_REFERENCE_TABLE", filepath.Join(cwd, "data", "StatischesNetzmodell_Datentabelle2023.csv")),
		ReferenceName:      getEnv("GRID_REFERENCE_NAME", "50Hertz"),
		EurModelDir:        getEnv("GRID_PYPSA_EUR_DIR", filepath.Join(cwd, "data", "base_eur")),
		EarthModelDir:      getEnv("GRID_PYPSA_EARTH_DIR", filepath.Join(cwd, "data", "base_earth")),
		OutputPath:         getEnv("GRID_OUTPUT_HTML", filepath.Join(cwd, "out", "pypsa-grid-analysis.html")),
		Country:            getEnv("GRID_COUNTRY", "DE"),
		MapZoom:            getEnvInt("GRID_MAP_ZOOM", 5),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
