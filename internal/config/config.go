// Package config loads server settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds every environment-driven setting.
type Config struct {
	Port               string `env:"PORT" envDefault:"5175"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
	ClientOrigin       string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	RosterFile         string `env:"ROSTER_FILE"` // empty means the embedded roster
	DailyEpoch         string `env:"DAILY_EPOCH" envDefault:"2025-03-01"`
	SeedSearchAttempts int    `env:"SEED_SEARCH_ATTEMPTS" envDefault:"10000"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SeedSearchAttempts <= 0 {
		return Config{}, fmt.Errorf("SEED_SEARCH_ATTEMPTS must be positive, got %d", cfg.SeedSearchAttempts)
	}
	return cfg, nil
}

// Level returns the configured zerolog level, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Addr returns the listen address for Port.
func (c Config) Addr() string { return ":" + c.Port }
