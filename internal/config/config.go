// Package config sources runtime configuration from environment variables,
// with a best-effort .env file for local development. Defaults not set in
// the environment fall back to the persisted app config file.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/piwi3910/BuildQuote/internal/model"
	"github.com/piwi3910/BuildQuote/internal/project"
)

// Config holds runtime configuration for the CLI.
type Config struct {
	// DBPath is the SQLite price database location.
	DBPath string

	// EstimatorURL is the base URL of the AI price-estimation service.
	// Empty disables the AI resolver (offline mode).
	EstimatorURL string
	EstimatorKey string

	// Defaults applied when a project file omits them.
	DefaultZipCode   string
	DefaultLaborRate float64
}

const defaultLaborRate = 55.0

// Load reads environment variables and returns a populated Config.
// Production should use real env injection; the .env file is a local
// development convenience and missing is fine. The default zip code and
// labor rate fall back to the saved app config when the environment does
// not set them.
func Load() Config {
	_ = godotenv.Load()

	app, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Printf("warning: ignoring unreadable app config: %v", err)
		app = model.DefaultAppConfig()
	}

	cfg := Config{
		DBPath:         os.Getenv("BUILDQUOTE_DB_PATH"),
		EstimatorURL:   os.Getenv("BUILDQUOTE_ESTIMATOR_URL"),
		EstimatorKey:   os.Getenv("BUILDQUOTE_ESTIMATOR_KEY"),
		DefaultZipCode: os.Getenv("BUILDQUOTE_ZIP_CODE"),
	}
	if cfg.DefaultZipCode == "" {
		cfg.DefaultZipCode = app.DefaultZipCode
	}

	if cfg.DBPath == "" {
		cfg.DBPath = project.DefaultDBPath()
	}

	cfg.DefaultLaborRate = app.DefaultLaborRate
	if cfg.DefaultLaborRate <= 0 {
		cfg.DefaultLaborRate = defaultLaborRate
	}
	if v := os.Getenv("BUILDQUOTE_LABOR_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate <= 0 {
			log.Printf("warning: ignoring invalid BUILDQUOTE_LABOR_RATE %q", v)
		} else {
			cfg.DefaultLaborRate = rate
		}
	}

	if cfg.EstimatorURL == "" {
		log.Print("warning: BUILDQUOTE_ESTIMATOR_URL is not set, AI price estimates are disabled")
	}

	return cfg
}
