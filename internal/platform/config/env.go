// Package config loads ICHING_ environment settings and handles fatal exits.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every env tag parsed by ParseEnv.
const EnvPrefix = "ICHING_"

// ParseEnv loads configuration from ICHING_-prefixed environment variables,
// so a field tagged `env:"FORMAT"` reads ICHING_FORMAT.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
