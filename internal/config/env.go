// Package config loads host configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Host configures the demo host that drives a generator session.
type Host struct {
	// Seed for the session's random source. Zero draws a fresh seed.
	Seed int64 `env:"TEMPORALBREACH_SEED" envDefault:"0"`
	// Telemetry enables OTLP trace export.
	Telemetry bool `env:"TEMPORALBREACH_TELEMETRY" envDefault:"false"`
	// Debug switches the session logger to debug level.
	Debug bool `env:"TEMPORALBREACH_DEBUG" envDefault:"false"`

	HoneycombAPIKey  string `env:"HONEYCOMB_TEMPORALBREACH_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_TEMPORALBREACH_DATASET" envDefault:"temporalbreach"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadHost parses the host configuration from the environment.
func LoadHost() (Host, error) {
	var cfg Host
	if err := ParseEnv(&cfg); err != nil {
		return Host{}, err
	}
	return cfg, nil
}
