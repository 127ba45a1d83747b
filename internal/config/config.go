// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied after all sources are merged.
const (
	DefaultCookieName    = "username"
	DefaultCookieTTLDays = 7
	DefaultSweepInterval = time.Hour
	DefaultDotEnvFile    = ".env"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging a .env file, environment variables, command-line flags and an
// optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Cookie  Cookie  `envPrefix:"COOKIE_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or YAML file merged on top
	// of the other sources. Set via CONFIG or -c / -config.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is reported by /api/version/ and the build info window.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Cookie configures the remembered username cookie.
type Cookie struct {
	// Name of the cookie. Env: COOKIE_NAME
	Name string `env:"NAME"`

	// TTLDays is the cookie lifetime in days. Env: COOKIE_TTL_DAYS
	TTLDays int `env:"TTL_DAYS"`

	// Disabled makes every jar report cookies as unavailable, the way a
	// browser with cookies turned off does. Env: COOKIE_DISABLED
	Disabled bool `env:"DISABLED"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the connection string of the cookie jar database.
type DB struct {
	// DSN is a SQLite file path or a postgres:// URL. Empty keeps the jar in
	// memory. Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds settings of the HTTP surface.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request. Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers configures background jobs.
type Workers struct {
	// SweepInterval is how often expired cookies are purged from the
	// database jar. Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the configuration. Later
// sources override non-zero fields of earlier ones:
//  1. .env file in the working directory (variables already set win)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML file (path resolved from sources 1-3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DefaultDotEnvFile).
		withEnv().
		withFlags().
		withFile().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = DefaultCookieName
	}
	if cfg.Cookie.TTLDays == 0 {
		cfg.Cookie.TTLDays = DefaultCookieTTLDays
	}
	if cfg.Workers.SweepInterval == 0 {
		cfg.Workers.SweepInterval = DefaultSweepInterval
	}
}
