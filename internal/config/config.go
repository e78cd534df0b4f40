// Package config loads service configuration from the environment
package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pokeforge/pokeforge-api/internal/errors"
)

// Config holds the service configuration. Every field maps to a
// POKEFORGE_* environment variable.
type Config struct {
	// Port is the HTTP listen port (POKEFORGE_PORT)
	Port int

	// RedisAddr is the cache endpoint (POKEFORGE_REDIS_ADDR)
	RedisAddr string

	// DatabaseURL is the Postgres DSN; empty selects the in-memory
	// store (POKEFORGE_DATABASE_URL)
	DatabaseURL string

	// PokeAPIBaseURL is the upstream catalog API (POKEFORGE_POKEAPI_BASE_URL)
	PokeAPIBaseURL string

	// Locale is the display locale for localized names (POKEFORGE_LOCALE)
	Locale string

	// CacheTTL is how long catalog views stay cached (POKEFORGE_CACHE_TTL)
	CacheTTL time.Duration

	// FanOutLimit caps concurrent upstream fetches (POKEFORGE_FANOUT_LIMIT)
	FanOutLimit int
}

// Load reads configuration from the environment with defaults applied
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("POKEFORGE")
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("database_url", "")
	v.SetDefault("pokeapi_base_url", "https://pokeapi.co/api/v2")
	v.SetDefault("locale", "fr")
	v.SetDefault("cache_ttl", "24h")
	v.SetDefault("fanout_limit", 50)

	cfg := &Config{
		Port:           v.GetInt("port"),
		RedisAddr:      v.GetString("redis_addr"),
		DatabaseURL:    v.GetString("database_url"),
		PokeAPIBaseURL: v.GetString("pokeapi_base_url"),
		Locale:         v.GetString("locale"),
		CacheTTL:       v.GetDuration("cache_ttl"),
		FanOutLimit:    v.GetInt("fanout_limit"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration for obvious mistakes
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Port <= 0 || c.Port > 65535 {
		vb.InvalidField("port", "must be a valid TCP port")
	}
	if c.RedisAddr == "" {
		vb.RequiredField("redis_addr")
	}
	if c.Locale == "" {
		vb.RequiredField("locale")
	}
	if c.CacheTTL <= 0 {
		vb.InvalidField("cache_ttl", "must be a positive duration")
	}
	if c.FanOutLimit <= 0 {
		vb.InvalidField("fanout_limit", "must be positive")
	}

	return vb.Build()
}
