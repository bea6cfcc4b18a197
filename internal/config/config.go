// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration of go-panel. Each field
// carries its environment name (env, envPrefix) and its key in the config
// file (yaml). Config files may be written in JSON or YAML.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_" yaml:"app"`
	Storage Storage `envPrefix:"STORAGE_" yaml:"storage"`
	Server  Server  `envPrefix:"SERVER_" yaml:"server"`

	// FilePath names the config file. Set by CONFIG, -c or -config.
	FilePath string `env:"CONFIG" yaml:"-"`
}

// App configures token issuing, the reported version and logging.
type App struct {
	// TokenSignKey signs and verifies bearer tokens (HS256).
	TokenSignKey string `env:"TOKEN_SIGN_KEY" yaml:"token_sign_key"`

	// TokenIssuer is written to and required in the "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER" yaml:"token_issuer"`

	// TokenDuration is the lifetime of tokens minted by cmd/token.
	TokenDuration time.Duration `env:"TOKEN_DURATION" yaml:"token_duration"`

	// Version is reported by GET /api/version. The server falls back to
	// its build version.
	Version string `env:"VERSION" yaml:"version"`

	// LogLevel drops log entries below this level ("debug", "info", "warn",
	// "error"). Empty keeps debug.
	LogLevel string `env:"LOG_LEVEL" yaml:"log_level"`
}

type Storage struct {
	DB DB `envPrefix:"DB_" yaml:"db"`
}

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB configures the egg and server store.
type DB struct {
	// Driver is "pgx" or "sqlite3". Left empty, it is picked from the DSN.
	Driver string `env:"DRIVER" yaml:"driver"`

	// DSN, e.g. "postgres://panel@localhost:5432/panel?sslmode=disable" or
	// "file:panel.db". STORAGE_DB_DATABASE_URI, falling back to DATABASE_URL.
	DSN string `env:"DATABASE_URI" yaml:"dsn"`

	// MaxOpenConns caps the connection pool. Zero keeps the driver default.
	MaxOpenConns int `env:"MAX_OPEN_CONNS" yaml:"max_open_conns"`
}

// Server configures the HTTP listener.
type Server struct {
	// HTTPAddress is the listen address, host:port.
	HTTPAddress string `env:"ADDRESS" yaml:"http_address"`

	// RequestTimeout bounds reading and writing one request. The server
	// uses 30s when unset.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" yaml:"request_timeout"`
}
