package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment. An empty DBPath falls back to
// the default path under the home directory.
type Config struct {
	DBPath  string `env:"ODYSSEY_DB"`
	LogPath string `env:"ODYSSEY_LOG"`
	Quiet   bool   `env:"ODYSSEY_QUIET"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
