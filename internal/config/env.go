// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// databaseURLEnv is read when STORAGE_DB_DATABASE_URI is not set, so the
// panel runs unchanged on hosts that inject a single DATABASE_URL.
const databaseURLEnv = "DATABASE_URL"

// parseEnv reads a [StructuredConfig] from environ. A nil environ means the
// process environment.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = lookupEnv(environ, databaseURLEnv)
	}

	return cfg, nil
}

func lookupEnv(environ map[string]string, key string) string {
	if environ == nil {
		return os.Getenv(key)
	}
	return environ[key]
}
