package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the dashboard needs to reach the remote
// store. Loaded from the environment, optionally seeded from a .env
// file.
type Config struct {
	API struct {
		BaseURL string
		Token   string
		Timeout time.Duration
	}
	LowStockThreshold int
}

// Load reads the .env file at path when one exists, then the process
// environment. API_BASE_URL is required; everything else has defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}
	cfg.API.BaseURL = os.Getenv("API_BASE_URL")
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}
	cfg.API.Token = os.Getenv("API_TOKEN")

	cfg.API.Timeout = 30 * time.Second
	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be a positive integer, got %q", raw)
		}
		cfg.API.Timeout = time.Duration(secs) * time.Second
	}

	cfg.LowStockThreshold = 60
	if raw := os.Getenv("LOW_STOCK_THRESHOLD"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("LOW_STOCK_THRESHOLD must be a positive integer, got %q", raw)
		}
		cfg.LowStockThreshold = n
	}

	return cfg, nil
}
