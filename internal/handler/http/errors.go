// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Authentication failures reported before a token reaches the auth service.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("`Authorization` header is not a bearer token")
)

// Sentinel errors reported for malformed request input.
var (
	ErrInvalidJSON      = errors.New("invalid JSON was passed")
	ErrInvalidYAML      = errors.New("invalid YAML was passed")
	ErrInvalidPathParam = errors.New("invalid path parameter")
	ErrInvalidGzip      = errors.New("invalid gzip data")
)
