// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"strings"
)

// messages holds the English message templates. Size rules have a numeric
// and a string variant.
var messages = map[string]string{
	"required":        "The :attribute field is required.",
	"string":          "The :attribute must be a string.",
	"numeric":         "The :attribute must be a number.",
	"integer":         "The :attribute must be an integer.",
	"boolean":         "The :attribute field must be true or false.",
	"min.numeric":     "The :attribute must be at least :min.",
	"min.string":      "The :attribute must be at least :min characters.",
	"max.numeric":     "The :attribute may not be greater than :max.",
	"max.string":      "The :attribute may not be greater than :max characters.",
	"size.numeric":    "The :attribute must be :size.",
	"size.string":     "The :attribute must be :size characters.",
	"between.numeric": "The :attribute must be between :min and :max.",
	"between.string":  "The :attribute must be between :min and :max characters.",
	"in":              "The selected :attribute is invalid.",
	"not_in":          "The selected :attribute is invalid.",
	"alpha":           "The :attribute may only contain letters.",
	"alpha_num":       "The :attribute may only contain letters and numbers.",
	"alpha_dash":      "The :attribute may only contain letters, numbers, and dashes.",
	"email":           "The :attribute must be a valid email address.",
	"url":             "The :attribute format is invalid.",
	"ip":              "The :attribute must be a valid IP address.",
	"regex":           "The :attribute format is invalid.",
	"not_regex":       "The :attribute format is invalid.",
	"digits":          "The :attribute must be :digits digits.",
	"digits_between":  "The :attribute must be between :min and :max digits.",
}

// message renders the failure message of rule for attribute.
func message(attribute string, rule Rule, numeric bool) string {
	key := rule.Name
	switch rule.Name {
	case "min", "max", "size", "between":
		if numeric {
			key += ".numeric"
		} else {
			key += ".string"
		}
	}

	template, ok := messages[key]
	if !ok {
		template = "The :attribute is invalid."
	}

	replacements := []string{":attribute", AttributeLabel(attribute)}
	switch rule.Name {
	case "min":
		replacements = append(replacements, ":min", ruleParam(rule, 0))
	case "max":
		replacements = append(replacements, ":max", ruleParam(rule, 0))
	case "size":
		replacements = append(replacements, ":size", ruleParam(rule, 0))
	case "digits":
		replacements = append(replacements, ":digits", ruleParam(rule, 0))
	case "between", "digits_between":
		replacements = append(replacements, ":min", ruleParam(rule, 0), ":max", ruleParam(rule, 1))
	}

	return strings.NewReplacer(replacements...).Replace(template)
}

// AttributeLabel turns a field key into the label used in messages:
// "variable_value" becomes "variable value".
func AttributeLabel(attribute string) string {
	return strings.ReplaceAll(attribute, "_", " ")
}

func ruleParam(rule Rule, i int) string {
	if i >= len(rule.Params) {
		return ""
	}
	return strings.TrimSpace(rule.Params[i])
}

// MessageBag collects failure messages keyed by field name. It serialises
// to a JSON object of string arrays.
type MessageBag map[string][]string

// Add appends a message for key.
func (b MessageBag) Add(key, msg string) {
	b[key] = append(b[key], msg)
}

// First returns the first message for key or an empty string.
func (b MessageBag) First(key string) string {
	if msgs := b[key]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// IsEmpty reports whether the bag holds no messages.
func (b MessageBag) IsEmpty() bool {
	return len(b) == 0
}
