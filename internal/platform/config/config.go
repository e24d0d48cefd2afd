// Package config loads process configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full process configuration.
type Config struct {
	Server    Server
	Log       Log
	Upstream  Upstream
	Lookup    Lookup
	Cooldown  Cooldown
	Redis     RedisConfig
	Telemetry Telemetry
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `env:"LOOKOUT_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Upstream configures the platform clients. Every base URL is overridable
// for tests and proxies.
type Upstream struct {
	Timeout       time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"4s"`
	SessionCookie string        `env:"ROBLOX_SESSION_COOKIE"`
	UsersURL      string        `env:"ROBLOX_USERS_URL" envDefault:"https://users.roblox.com"`
	ThumbnailsURL string        `env:"ROBLOX_THUMBNAILS_URL" envDefault:"https://thumbnails.roblox.com"`
	PresenceURL   string        `env:"ROBLOX_PRESENCE_URL" envDefault:"https://presence.roblox.com"`
	InventoryURL  string        `env:"ROBLOX_INVENTORY_URL" envDefault:"https://inventory.roblox.com"`
	AccountURL    string        `env:"ROBLOX_ACCOUNTINFO_URL" envDefault:"https://accountinformation.roblox.com"`
	AuthURL       string        `env:"ROBLOX_AUTH_URL" envDefault:"https://auth.roblox.com"`
	WebURL        string        `env:"ROBLOX_WEB_URL" envDefault:"https://www.roblox.com"`
	RolimonsURL   string        `env:"ROLIMONS_URL" envDefault:"https://api.rolimons.com"`
}

// Lookup configures the classification pipeline.
type Lookup struct {
	Denylist         []int64       `env:"BAN_DENYLIST" envDefault:"1126" envSeparator:","`
	ReferenceItemID  int64         `env:"REFERENCE_ITEM_ID" envDefault:"102611803"`
	BreakersEnabled  bool          `env:"BREAKERS_ENABLED" envDefault:"true"`
	BreakerFailures  int           `env:"BREAKER_FAILURE_THRESHOLD" envDefault:"5"`
	BreakerSuccesses int           `env:"BREAKER_SUCCESS_THRESHOLD" envDefault:"2"`
	BreakerCoolOff   time.Duration `env:"BREAKER_COOL_OFF" envDefault:"30s"`
}

type Cooldown struct {
	Window time.Duration `env:"COOLDOWN_WINDOW" envDefault:"5s"`
}

// RedisConfig selects the shared cooldown store. An empty URL keeps
// cooldowns in process memory.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// Telemetry enables trace export when an OTLP endpoint is set.
type Telemetry struct {
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"lookout"`
}

// FromEnv parses and validates the configuration.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the pipeline cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Upstream.Timeout <= 0 {
		errs = append(errs, errors.New("UPSTREAM_TIMEOUT must be positive"))
	}
	if c.Cooldown.Window < 0 {
		errs = append(errs, errors.New("COOLDOWN_WINDOW must not be negative"))
	}
	if c.Lookup.ReferenceItemID <= 0 {
		errs = append(errs, errors.New("REFERENCE_ITEM_ID must be positive"))
	}
	return errors.Join(errs...)
}
