// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for go-panel.
//
// Core concepts:
//   - Validator: generic interface to validate request shapes. Supports
//     optional field-level scoping for targeted validation.
//   - VariableValidator: the egg variable pass. It checks submitted
//     environment values against the rules declared by an egg and returns
//     the accepted values or a [*ValidationError].
//   - RuleEngine: the pluggable rule evaluator used by VariableValidator.
package validators

import (
	"context"

	"github.com/MKhiriev/go-panel/internal/rules"
)

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// RuleEngine evaluates rule strings against field values. A nil value is a
// null field; a key missing from data is an absent field.
type RuleEngine interface {
	Evaluate(data map[string]*string, ruleStrings map[string]string) (rules.Result, error)
}
