// Package config loads application configuration from the environment,
// with optional .env file support.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the environment-provided settings. The API key is the
// only required value; its absence is a fatal configuration error
// surfaced before any interaction starts.
type Config struct {
	APIKey   string `env:"GEMINI_API_KEY,required,notEmpty"`
	Model    string `env:"GEMCHAT_MODEL"`
	PromptID string `env:"GEMCHAT_PROMPT" envDefault:"default"`
	LogFile  string `env:"GEMCHAT_LOG_FILE"`
	LogLevel string `env:"GEMCHAT_LOG_LEVEL" envDefault:"info"`
}

// Load reads .env (when present) and parses the environment.
func Load() (*Config, error) {
	// A missing .env is not an error; real env vars take precedence.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
