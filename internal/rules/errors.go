// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import "errors"

// Errors returned when a rule string cannot be interpreted. They describe a
// broken egg definition, not a bad submitted value.
var (
	// ErrUnknownRule is returned for a rule name the engine does not implement.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrInvalidParameter is returned when a rule is missing a parameter or a
	// parameter has the wrong form (e.g. "max:abc" or an uncompilable regex).
	ErrInvalidParameter = errors.New("invalid validation rule parameter")
)
