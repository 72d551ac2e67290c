package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config is the server configuration, decoded from the environment
type Config struct {
	Port          int `env:"PORT,default=8000"`
	StartingBulls int `env:"PREF_STARTING_BULLS,default=60"`
	Refas         int `env:"PREF_REFAS,default=1"`
}

// Load reads the configuration from the environment, falling back to
// defaults
func Load() (Config, error) {
	var c Config
	if err := envdecode.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}
	return c, nil
}

// Addr returns the listen address
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
