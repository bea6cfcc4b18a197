// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// check reports whether value satisfies rule. value is nil for a null value.
type check func(e *Engine, value *string, rule Rule, numeric bool) bool

type definition struct {
	// implicit rules run even when the value is null or blank.
	implicit bool

	// marker rules change how other rules run and never fail themselves.
	marker bool

	// params is the minimum number of parameters.
	params int

	// rawParam keeps the whole parameter unsplit (regex patterns may contain commas).
	rawParam bool

	check check
}

var (
	numericPattern   = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)
	alphaDashPattern = regexp.MustCompile(`^[\pL\pM\pN_-]+$`)
	digitsPattern    = regexp.MustCompile(`^[0-9]+$`)
	integerPattern   = regexp.MustCompile(`^\s*[+-]?(0|[1-9][0-9]*)\s*$`)
)

var definitions = map[string]definition{
	"bail":      {marker: true},
	"nullable":  {marker: true},
	"sometimes": {marker: true},

	"required": {implicit: true, check: checkRequired},

	"string":  {check: checkString},
	"numeric": {check: checkNumeric},
	"integer": {check: checkInteger},
	"boolean": {check: checkBoolean},

	"min":     {params: 1, check: checkMin},
	"max":     {params: 1, check: checkMax},
	"size":    {params: 1, check: checkSize},
	"between": {params: 2, check: checkBetween},

	"in":     {params: 1, check: checkIn},
	"not_in": {params: 1, check: checkNotIn},

	"alpha":      {check: tagCheck("alphaunicode")},
	"alpha_num":  {check: tagCheck("alphanumunicode")},
	"alpha_dash": {check: patternCheck(alphaDashPattern)},
	"email":      {check: tagCheck("email")},
	"url":        {check: tagCheck("url")},
	"ip":         {check: tagCheck("ip")},

	"regex":     {params: 1, rawParam: true, check: checkRegex},
	"not_regex": {params: 1, rawParam: true, check: checkNotRegex},

	"digits":         {params: 1, check: checkDigits},
	"digits_between": {params: 2, check: checkDigitsBetween},
}

func checkRequired(_ *Engine, value *string, _ Rule, _ bool) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}

func checkString(_ *Engine, value *string, _ Rule, _ bool) bool {
	return value != nil
}

func checkNumeric(_ *Engine, value *string, _ Rule, _ bool) bool {
	return value != nil && numericPattern.MatchString(*value)
}

func checkInteger(_ *Engine, value *string, _ Rule, _ bool) bool {
	if value == nil || !integerPattern.MatchString(*value) {
		return false
	}
	_, err := strconv.ParseInt(strings.TrimSpace(*value), 10, 64)
	return err == nil
}

func checkBoolean(_ *Engine, value *string, _ Rule, _ bool) bool {
	// Only the strings "0" and "1" count; "true" and "false" are rejected.
	return value != nil && (*value == "0" || *value == "1")
}

func checkMin(_ *Engine, value *string, rule Rule, numeric bool) bool {
	return sizeOf(value, numeric) >= param(rule, 0)
}

func checkMax(_ *Engine, value *string, rule Rule, numeric bool) bool {
	return sizeOf(value, numeric) <= param(rule, 0)
}

func checkSize(_ *Engine, value *string, rule Rule, numeric bool) bool {
	return sizeOf(value, numeric) == param(rule, 0)
}

func checkBetween(_ *Engine, value *string, rule Rule, numeric bool) bool {
	size := sizeOf(value, numeric)
	return size >= param(rule, 0) && size <= param(rule, 1)
}

func checkIn(_ *Engine, value *string, rule Rule, _ bool) bool {
	return slices.Contains(rule.Params, deref(value))
}

func checkNotIn(_ *Engine, value *string, rule Rule, _ bool) bool {
	return !slices.Contains(rule.Params, deref(value))
}

func checkRegex(_ *Engine, value *string, rule Rule, _ bool) bool {
	return value != nil && rule.pattern.MatchString(*value)
}

func checkNotRegex(_ *Engine, value *string, rule Rule, _ bool) bool {
	return value != nil && !rule.pattern.MatchString(*value)
}

func checkDigits(_ *Engine, value *string, rule Rule, _ bool) bool {
	return value != nil && digitsPattern.MatchString(*value) && float64(len(*value)) == param(rule, 0)
}

func checkDigitsBetween(_ *Engine, value *string, rule Rule, _ bool) bool {
	if value == nil || !digitsPattern.MatchString(*value) {
		return false
	}
	length := float64(len(*value))
	return length >= param(rule, 0) && length <= param(rule, 1)
}

// tagCheck delegates a format rule to a go-playground/validator tag.
func tagCheck(tag string) check {
	return func(e *Engine, value *string, _ Rule, _ bool) bool {
		return value != nil && e.validate.Var(*value, tag) == nil
	}
}

func patternCheck(pattern *regexp.Regexp) check {
	return func(_ *Engine, value *string, _ Rule, _ bool) bool {
		return value != nil && pattern.MatchString(*value)
	}
}

// sizeOf measures a value for the size rules: its numeric value when the
// field is numeric and the value parses, its character count otherwise.
func sizeOf(value *string, numeric bool) float64 {
	s := deref(value)
	if numeric && numericPattern.MatchString(s) {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			return f
		}
	}
	return float64(utf8.RuneCountInString(s))
}

// param returns the i-th parameter as a number. Parameters are checked by
// Parse, so a parse failure here cannot happen for rules built by Parse.
func param(rule Rule, i int) float64 {
	if i >= len(rule.Params) {
		return 0
	}
	f, _ := strconv.ParseFloat(strings.TrimSpace(rule.Params[i]), 64)
	return f
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
