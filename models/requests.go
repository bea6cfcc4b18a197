// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ValidateVariablesRequest asks for a dry-run validation of environment
// values against the variables of an egg.
type ValidateVariablesRequest struct {
	// EggID is taken from the request path.
	EggID int64 `json:"-"`

	// Environment maps environment variable keys to submitted values.
	Environment map[string]string `json:"environment"`
}

// UpdateStartupRequest changes the stored variable values of a server.
type UpdateStartupRequest struct {
	// ServerID is taken from the request path.
	ServerID int64 `json:"-"`

	Environment map[string]string `json:"environment"`
}

// CreateServerRequest creates a new server from an egg.
type CreateServerRequest struct {
	Name        string            `json:"name"`
	EggID       int64             `json:"egg_id"`
	Environment map[string]string `json:"environment"`
}

// ResultsResponse is the response body for endpoints returning accepted
// variable values.
type ResultsResponse struct {
	Data []ValidationResult `json:"data"`
}

// GetStartupRequest asks for the startup variables of a server.
type GetStartupRequest struct {
	// ServerID is taken from the request path.
	ServerID int64 `json:"-"`
}
