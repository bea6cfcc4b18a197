// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required by the HTTP server before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.validateStorage(); err != nil {
		return err
	}
	if err := cfg.validateApp(); err != nil {
		return err
	}

	return cfg.validateServer()
}

// validateStorage requires a DSN and fills an empty driver from it.
func (cfg *StructuredConfig) validateStorage() error {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = driverForDSN(cfg.Storage.DB.DSN)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.DB.MaxOpenConns < 0 {
		return fmt.Errorf("%w: negative max open conns", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *StructuredConfig) validateApp() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

// driverForDSN picks sqlite3 for file DSNs ("file:panel.db", "panel.sqlite",
// ":memory:") and pgx for everything else.
func driverForDSN(dsn string) string {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "file:"), lower == ":memory:":
		return DriverSQLite
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"):
		return DriverSQLite
	default:
		return DriverPostgres
	}
}
