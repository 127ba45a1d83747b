package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads CONFIG and the APP_, COOKIE_, STORAGE_, SERVER_ and
// WORKERS_ variables. Unset variables stay zero so that mergo keeps the
// values of earlier sources.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return &cfg, nil
}
