// Package config provides configuration loading, merging, and validation
// facilities for the go-panel server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (JSON or YAML)
//
// The main entry point is [GetStructuredConfig]. Offline tools use
// [GetStorageConfig] and [GetTokenConfig], which validate only the section
// they need. When no driver is configured it is picked from the DSN.
package config
