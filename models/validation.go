// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ValidationResult is one accepted variable value.
type ValidationResult struct {
	// ID is the identifier of the [EggVariable] the value belongs to.
	ID int64 `json:"id"`

	// Key is the environment variable key of the variable.
	Key string `json:"key"`

	// Value is the submitted value, exactly as received.
	Value string `json:"value"`
}

// ValidationSet is the ordered list of values accepted by a validation pass.
// Order follows the order in which the egg variables were fetched.
type ValidationSet struct {
	results []ValidationResult
}

// NewValidationSet wraps results into a [ValidationSet].
func NewValidationSet(results ...ValidationResult) ValidationSet {
	return ValidationSet{results: results}
}

// Results returns the accepted values. The returned slice is never nil.
func (s ValidationSet) Results() []ValidationResult {
	if s.results == nil {
		return []ValidationResult{}
	}
	return s.results
}

// Len returns the number of accepted values.
func (s ValidationSet) Len() int {
	return len(s.results)
}

// Values converts the set into a map of variable ID to value, the shape the
// persistence layer stores.
func (s ValidationSet) Values() map[int64]string {
	values := make(map[int64]string, len(s.results))
	for _, r := range s.results {
		values[r.ID] = r.Value
	}
	return values
}
