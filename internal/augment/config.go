package augment

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// ConfigFromEnv builds a Config from APTIQ_-prefixed environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "APTIQ_"}); err != nil {
		return Config{}, fmt.Errorf("parse generation config: %w", err)
	}
	return cfg, nil
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		Timeout:     45 * time.Second,
		MaxTokens:   4000,
		Temperature: 0.9,
	}
}
