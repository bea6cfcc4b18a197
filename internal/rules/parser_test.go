// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNames []string
		wantErr   error
	}{
		{
			name:      "empty string gives empty set",
			input:     "",
			wantNames: []string{},
		},
		{
			name:      "simple pipe list",
			input:     "required|string|max:20",
			wantNames: []string{"required", "string", "max"},
		},
		{
			name:      "empty segments and spaces are ignored",
			input:     " required || numeric |",
			wantNames: []string{"required", "numeric"},
		},
		{
			name:      "rule names are case-insensitive",
			input:     "Required|NUMERIC",
			wantNames: []string{"required", "numeric"},
		},
		{
			name:      "pipe inside delimited regex does not split",
			input:     "required|regex:/^(yes|no)$/|max:3",
			wantNames: []string{"required", "regex", "max"},
		},
		{
			name:    "unknown rule",
			input:   "required|shiny",
			wantErr: ErrUnknownRule,
		},
		{
			name:    "missing parameter",
			input:   "max",
			wantErr: ErrInvalidParameter,
		},
		{
			name:    "non numeric parameter",
			input:   "between:1,abc",
			wantErr: ErrInvalidParameter,
		},
		{
			name:    "between needs two parameters",
			input:   "between:1",
			wantErr: ErrInvalidParameter,
		},
		{
			name:    "broken regex",
			input:   "regex:/^(abc$/",
			wantErr: ErrInvalidParameter,
		},
		{
			name:    "unsupported regex flag",
			input:   "regex:/abc/x",
			wantErr: ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Parse(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			names := make([]string, 0, len(set))
			for _, r := range set {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestParse_Params(t *testing.T) {
	set, err := Parse("between:1024,65535|in:a,b,c|regex:/^[a-z,]+$/i")
	require.NoError(t, err)
	require.Len(t, set, 3)

	assert.Equal(t, []string{"1024", "65535"}, set[0].Params)
	assert.Equal(t, []string{"a", "b", "c"}, set[1].Params)
	// regex keeps commas in its single parameter
	assert.Equal(t, []string{"/^[a-z,]+$/i"}, set[2].Params)
	assert.True(t, set[2].pattern.MatchString("ABC,def"))
}

func TestNames(t *testing.T) {
	names := Names()

	assert.True(t, slices.IsSorted(names))
	assert.Subset(t, names, []string{"between", "nullable", "numeric", "regex", "required", "string"})
	for _, name := range names {
		rule := name
		if n := definitions[name].params; n > 0 {
			rule += ":" + strings.TrimSuffix(strings.Repeat("1,", n), ",")
		}
		_, err := Parse(rule)
		assert.NoError(t, err, rule)
	}
}

func TestRuleSet_String(t *testing.T) {
	set, err := Parse(" required | numeric||between:1,10 ")
	require.NoError(t, err)
	assert.Equal(t, "required|numeric|between:1,10", set.String())
	assert.True(t, set.Has("numeric"))
	assert.False(t, set.Has("string"))
}

func TestCompilePattern(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		match   string
		noMatch string
	}{
		{name: "slash delimited", raw: "/^[0-9]+$/", match: "123", noMatch: "12a"},
		{name: "hash delimited", raw: "#^a/b$#", match: "a/b", noMatch: "ab"},
		{name: "case-insensitive flag", raw: "/^abc$/i", match: "ABC", noMatch: "abd"},
		{name: "undelimited", raw: "^[a-z]+$", match: "abc", noMatch: "ABC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := compilePattern(tt.raw)
			require.NoError(t, err)
			assert.True(t, re.MatchString(tt.match))
			assert.False(t, re.MatchString(tt.noMatch))
		})
	}
}
