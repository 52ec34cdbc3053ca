// Package config loads completion-service settings from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Defaults for the Groq endpoint.
const (
	DefaultModel   = "llama-3.1-8b-instant"
	DefaultBaseURL = "https://api.groq.com/openai/v1"
)

// Config holds the completion-service settings. Operational knobs (listen
// address, database path, log file) are flags on the binary instead.
type Config struct {
	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string
}

// Load reads configuration from the environment, loading a .env file from
// the working directory first if one exists. A missing API key is an error;
// it is the only required setting.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GroqAPIKey:  getEnv("GROQ_API_KEY", ""),
		GroqModel:   getEnv("GROQ_MODEL", DefaultModel),
		GroqBaseURL: getEnv("GROQ_BASE_URL", DefaultBaseURL),
	}

	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
