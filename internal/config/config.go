// Package config reads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store names the document store backend
type Store string

const (
	StoreMemory Store = "memory"
	StoreRedis  Store = "redis"
)

// Config is the driver configuration
type Config struct {
	Store         Store  `env:"ORACULO_STORE" envDefault:"memory"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix     string `env:"ORACULO_KEY_PREFIX" envDefault:"oraculo:"`

	DrawCooldown time.Duration `env:"ORACULO_DRAW_COOLDOWN" envDefault:"1500ms"`
	RevealLock   time.Duration `env:"ORACULO_REVEAL_LOCK" envDefault:"800ms"`

	// Seed fixes the random source; zero seeds from crypto/rand
	Seed int64 `env:"ORACULO_SEED" envDefault:"0"`
}

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values env parsing cannot
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	if c.DrawCooldown < 0 {
		return fmt.Errorf("draw cooldown cannot be negative: %s", c.DrawCooldown)
	}
	if c.RevealLock < 0 {
		return fmt.Errorf("reveal lock cannot be negative: %s", c.RevealLock)
	}
	return nil
}
