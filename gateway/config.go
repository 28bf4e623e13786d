package gateway

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the configuration for the gateway application. All knobs are
// read once at startup; mode flags never change while the process runs.
type Config struct {
	HTTPAddr string `env:"BAMBORA_SIM_ADDR" env-default:"localhost:8000"`
	// Strict rejects unknown references with an error instead of
	// fabricating placeholder data for them.
	Strict bool `env:"BAMBORA_SIM_STRICT" env-default:"false"`
	// NoCache disables the record stores: created records are dropped
	// and every lookup misses.
	NoCache bool `env:"BAMBORA_SIM_NO_CACHE" env-default:"false"`
	// StoreCapacity bounds each record store; insertion past it evicts
	// the oldest record.
	StoreCapacity int `env:"BAMBORA_SIM_STORE_CAPACITY" env-default:"5000"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:      "localhost:8000",
		StoreCapacity: 5000,
	}
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := Config{}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from env: %w", err)
	}
	return &cfg, nil
}

// Policy derives the per-operation policy from the mode flags.
func (c *Config) Policy() Policy {
	return Policy{
		Strict:       c.Strict,
		CacheEnabled: !c.NoCache,
	}
}
