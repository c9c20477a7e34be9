package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "SHOPZONE"

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Session SessionConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

// CatalogConfig configures the external product catalog source and the fixed
// normalization constants applied at load time.
type CatalogConfig struct {
	BaseURL        string        `envconfig:"CATALOG_BASE_URL" default:"https://fakestoreapi.com"`
	FetchTimeout   time.Duration `envconfig:"CATALOG_FETCH_TIMEOUT" default:"10s"`
	ConversionRate float64       `envconfig:"CATALOG_CONVERSION_RATE" default:"83.5"`
}

// SessionConfig configures the session cookie and the idle-session sweep.
type SessionConfig struct {
	CookieName    string        `envconfig:"SESSION_COOKIE_NAME" default:"SHOPZONE_SESSION"`
	SigningKey    string        `envconfig:"SESSION_SIGNING_KEY"`
	Secure        bool          `envconfig:"SESSION_SECURE" default:"false"`
	MaxIdle       time.Duration `envconfig:"SESSION_MAX_IDLE" default:"24h"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"1h"`
}

// Load reads configuration from SHOPZONE_-prefixed environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}
	cfg.Catalog.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Catalog.BaseURL), "/")
	if cfg.Catalog.ConversionRate <= 0 {
		cfg.Catalog.ConversionRate = 83.5
	}
	return cfg, nil
}
