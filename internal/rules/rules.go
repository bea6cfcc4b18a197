// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rules evaluates pipe-delimited rule strings such as
// "required|string|max:20" against submitted values.
//
// The syntax follows the rule strings stored on egg variables:
//
//	engine := rules.New()
//	result, err := engine.Evaluate(
//	    map[string]*string{"variable_value": &value},
//	    map[string]string{"variable_value": "required|numeric|between:1024,65535"},
//	)
//	if err != nil {
//	    // the rule string itself is broken
//	}
//	if result.Failed() {
//	    // result.Errors["variable_value"] holds the messages
//	}
//
// Format rules (email, url, ip, alpha, alpha_num) are delegated to
// go-playground/validator.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Result is the outcome of one [Engine.Evaluate] call.
type Result struct {
	// Errors holds failure messages keyed by field name.
	Errors MessageBag
}

// Failed reports whether any field failed its rules.
func (r Result) Failed() bool {
	return !r.Errors.IsEmpty()
}

// Engine evaluates rule strings. It is safe for concurrent use.
type Engine struct {
	validate *validator.Validate
}

// New constructs an [Engine].
func New() *Engine {
	return &Engine{
		validate: validator.New(),
	}
}

// Evaluate checks every field named in rules against its value in data.
//
// A field missing from data is absent: only implicit rules (required) are
// checked for it, and "sometimes" skips it entirely. A nil value is present
// but null: every rule runs unless the rule string contains "nullable".
// A blank string skips every rule except the implicit ones.
//
// Every failing rule adds a message unless the rule string contains "bail",
// in which case checking stops at the first failure of that field.
//
// The returned error is non-nil only when a rule string cannot be parsed.
func (e *Engine) Evaluate(data map[string]*string, rules map[string]string) (Result, error) {
	result := Result{Errors: make(MessageBag)}

	fields := make([]string, 0, len(rules))
	for field := range rules {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		set, err := Parse(rules[field])
		if err != nil {
			return Result{}, fmt.Errorf("rules for %s: %w", field, err)
		}

		value, present := data[field]
		e.evaluateField(result.Errors, field, value, present, set)
	}

	return result, nil
}

func (e *Engine) evaluateField(bag MessageBag, field string, value *string, present bool, set RuleSet) {
	if !present && set.Has("sometimes") {
		return
	}

	nullable := set.Has("nullable")
	bail := set.Has("bail")
	numeric := set.Has("numeric") || set.Has("integer")

	for _, rule := range set {
		def := definitions[rule.Name]
		if def.marker {
			continue
		}

		if !def.implicit && !validatable(value, present, nullable) {
			continue
		}

		if def.check(e, value, rule, numeric) {
			continue
		}

		bag.Add(field, message(field, rule, numeric))
		if bail {
			return
		}
	}
}

// validatable reports whether non-implicit rules apply to the value.
func validatable(value *string, present, nullable bool) bool {
	if !present {
		return false
	}
	if value == nil {
		return !nullable
	}
	return strings.TrimSpace(*value) != ""
}
