// Package config reads runtime configuration from the process environment.
package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration for the API server.
type Config struct {
	Port   string
	APIKey string

	// Listing fetch shaping
	MaxListings int // raw listings pulled per search
	PageSize    int // fixed /search page size

	// Inbound rate limiting (requests per second per IP, with burst)
	RateLimit float64
	RateBurst int

	// MockMode swaps the live OLX client for the synthetic source.
	MockMode bool
}

// Load populates a Config from the environment, falling back to local-dev
// defaults. An empty API_KEY disables the key check entirely; the "dev-key"
// default keeps parity with the front end's development setup.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		APIKey:      getEnvAllowEmpty("API_KEY", "dev-key"),
		MaxListings: getEnvInt("MAX_LISTINGS", 80),
		PageSize:    getEnvInt("PAGE_SIZE", 20),
		RateLimit:   getEnvFloat("RATE_LIMIT", 10),
		RateBurst:   getEnvInt("RATE_BURST", 20),
		MockMode:    getEnvBool("MOCK_MODE", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvAllowEmpty distinguishes "unset" from "set to empty": exporting
// API_KEY="" is how operators turn the auth check off.
func getEnvAllowEmpty(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
