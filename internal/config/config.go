package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/aniqaqill/runners-list-scraper/internal/logger"
)

// Config carries the environment-driven settings. Flags may override the
// scrape URL and output locations; API credentials only come from the
// environment so they never land in shell history.
type Config struct {
	ScrapeURL string
	APIURL    string
	APIKey    string
}

// Load reads configuration from the environment, loading a .env file first if
// one is present. A missing .env file is not an error.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded .env file", nil)
	}

	return &Config{
		ScrapeURL: os.Getenv("SCRAPE_URL"),
		APIURL:    os.Getenv("API_URL"),
		APIKey:    os.Getenv("API_KEY"),
	}
}

// IsAPIConfigured reports whether both API credentials are set.
func (c *Config) IsAPIConfigured() bool {
	return c.APIURL != "" && c.APIKey != ""
}
