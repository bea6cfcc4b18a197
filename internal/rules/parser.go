// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Rule is a single parsed constraint, e.g. "between:1,10" becomes
// Rule{Name: "between", Params: []string{"1", "10"}}.
type Rule struct {
	Name   string
	Params []string

	pattern *regexp.Regexp
}

// String renders the rule back into rule-string form.
func (r Rule) String() string {
	if len(r.Params) == 0 {
		return r.Name
	}
	return r.Name + ":" + strings.Join(r.Params, ",")
}

// RuleSet is the ordered list of rules parsed from one rule string.
type RuleSet []Rule

// Has reports whether the set contains a rule with the given name.
func (rs RuleSet) Has(name string) bool {
	for _, r := range rs {
		if r.Name == name {
			return true
		}
	}
	return false
}

// String renders the set back into a pipe-delimited rule string.
func (rs RuleSet) String() string {
	parts := make([]string, 0, len(rs))
	for _, r := range rs {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, "|")
}

// Names returns the supported rule names in sorted order.
func Names() []string {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Parse splits a pipe-delimited rule string into a [RuleSet] and checks every
// rule name and parameter.
//
// Pipes inside a delimited regex pattern ("regex:/^(a|b)$/") do not split
// the rule. Empty segments are ignored, so "" parses to an empty set.
func Parse(ruleString string) (RuleSet, error) {
	segments := splitRules(ruleString)
	set := make(RuleSet, 0, len(segments))

	for _, segment := range segments {
		rule, err := parseRule(segment)
		if err != nil {
			return nil, err
		}
		set = append(set, rule)
	}

	return set, nil
}

func splitRules(s string) []string {
	segments := make([]string, 0, 4)

	for s != "" {
		if isRegexRule(s) {
			end := regexRuleEnd(s)
			segments = appendSegment(segments, s[:end])
			s = strings.TrimPrefix(s[end:], "|")
			continue
		}

		i := strings.IndexByte(s, '|')
		if i < 0 {
			segments = appendSegment(segments, s)
			break
		}
		segments = appendSegment(segments, s[:i])
		s = s[i+1:]
	}

	return segments
}

func appendSegment(segments []string, segment string) []string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return segments
	}
	return append(segments, segment)
}

func isRegexRule(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "regex:") || strings.HasPrefix(s, "not_regex:")
}

// regexRuleEnd returns the index right after the pattern's closing delimiter
// and flags, or the index of the next pipe when the pattern is not delimited.
func regexRuleEnd(s string) int {
	colon := strings.IndexByte(s, ':')
	start := colon + 1
	if start >= len(s) {
		return len(s)
	}

	delimiter := rune(s[start])
	if !isDelimiter(delimiter) {
		if i := strings.IndexByte(s[start:], '|'); i >= 0 {
			return start + i
		}
		return len(s)
	}

	escaped := false
	for i := start + 1; i < len(s); i++ {
		c := rune(s[i])
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == delimiter:
			end := i + 1
			for end < len(s) && unicode.IsLetter(rune(s[end])) {
				end++
			}
			return end
		}
	}

	return len(s)
}

// patternDelimiters are the characters accepted around a delimited pattern.
const patternDelimiters = "/#~%@!;"

func isDelimiter(c rune) bool {
	return strings.ContainsRune(patternDelimiters, c)
}

func parseRule(segment string) (Rule, error) {
	name, raw, hasParams := strings.Cut(segment, ":")
	rule := Rule{Name: strings.ToLower(strings.TrimSpace(name))}

	def, ok := definitions[rule.Name]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %s", ErrUnknownRule, rule.Name)
	}

	if hasParams {
		if def.rawParam {
			rule.Params = []string{raw}
		} else {
			rule.Params = strings.Split(raw, ",")
		}
	}

	if err := checkParams(&rule, def); err != nil {
		return Rule{}, fmt.Errorf("%w: %s: %w", ErrInvalidParameter, segment, err)
	}

	return rule, nil
}

func checkParams(rule *Rule, def definition) error {
	if len(rule.Params) < def.params {
		return fmt.Errorf("requires at least %d parameter(s)", def.params)
	}

	switch rule.Name {
	case "min", "max", "size", "between", "digits", "digits_between":
		for _, p := range rule.Params {
			if _, err := strconv.ParseFloat(strings.TrimSpace(p), 64); err != nil {
				return fmt.Errorf("parameter %q is not a number", p)
			}
		}
	case "regex", "not_regex":
		pattern, err := compilePattern(rule.Params[0])
		if err != nil {
			return err
		}
		rule.pattern = pattern
	}

	return nil
}

// compilePattern converts a delimited pattern such as "/^[a-z]+$/i" into a
// Go regular expression. Undelimited patterns are compiled as-is.
func compilePattern(raw string) (*regexp.Regexp, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty pattern")
	}

	delimiter := rune(raw[0])
	if !isDelimiter(delimiter) {
		return regexp.Compile(raw)
	}

	closing := strings.LastIndexByte(raw, raw[0])
	if closing <= 0 {
		return nil, fmt.Errorf("pattern %q has no closing delimiter", raw)
	}

	pattern := raw[1:closing]
	var goFlags strings.Builder
	for _, f := range raw[closing+1:] {
		switch f {
		case 'i', 'm', 's', 'U':
			goFlags.WriteRune(f)
		case 'u', 'D':
			// no-op in RE2
		default:
			return nil, fmt.Errorf("unsupported pattern flag %q", f)
		}
	}
	if goFlags.Len() > 0 {
		pattern = "(?" + goFlags.String() + ")" + pattern
	}

	return regexp.Compile(pattern)
}
