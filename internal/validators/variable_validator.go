// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"maps"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/store"
	"github.com/MKhiriev/go-panel/models"
)

// VariableField is the field name every variable value is evaluated under.
// Engine messages are keyed by it in [ValidationError] payloads.
const VariableField = "variable_value"

// VariableOptions configures one validation pass. The zero value validates
// no submitted fields as a regular user. Options are values: the With
// methods return modified copies.
type VariableOptions struct {
	fields map[string]string
	admin  bool
}

// NewVariableOptions returns options for a non-admin pass with no fields.
func NewVariableOptions() VariableOptions {
	return VariableOptions{}
}

// WithFields returns a copy of o validating fields, keyed by environment
// variable. A key missing from fields is treated as a null value.
func (o VariableOptions) WithFields(fields map[string]string) VariableOptions {
	o.fields = maps.Clone(fields)
	return o
}

// AsAdmin returns a copy of o with the admin flag set to admin. Admin passes
// validate every variable; user passes skip variables that are not both
// viewable and editable.
func (o VariableOptions) AsAdmin(admin bool) VariableOptions {
	o.admin = admin
	return o
}

// Admin reports whether the pass runs with administrative visibility.
func (o VariableOptions) Admin() bool {
	return o.admin
}

// VariableValidator checks submitted environment values against the
// variables of an egg. It keeps no per-call state and is safe for
// concurrent use.
type VariableValidator struct {
	repository store.EggVariableRepository
	engine     RuleEngine
}

func NewVariableValidator(repository store.EggVariableRepository, engine RuleEngine) *VariableValidator {
	return &VariableValidator{
		repository: repository,
		engine:     engine,
	}
}

// Validate runs the pass for eggID. Variables are visited in fetch order;
// the first value that breaks its rules aborts the pass with a
// [*ValidationError] and an empty set. Variables hidden from a non-admin
// caller are skipped without being validated or returned.
func (v *VariableValidator) Validate(ctx context.Context, eggID int64, opts VariableOptions) (models.ValidationSet, error) {
	log := logger.FromContext(ctx)

	variables, err := v.repository.FindByEgg(ctx, eggID)
	if err != nil {
		return models.NewValidationSet(), fmt.Errorf("error loading variables of egg %d: %w", eggID, err)
	}

	results := make([]models.ValidationResult, 0, len(variables))
	for _, variable := range variables {
		if !opts.admin && !variable.VisibleToUser() {
			continue
		}

		value, ok := opts.fields[variable.EnvVariable]
		var submitted *string
		if ok {
			submitted = &value
		}

		result, err := v.engine.Evaluate(
			map[string]*string{VariableField: submitted},
			map[string]string{VariableField: variable.Rules},
		)
		if err != nil {
			return models.NewValidationSet(), fmt.Errorf("error evaluating rules of %s: %w", variable.EnvVariable, err)
		}

		if result.Failed() {
			log.Debug().
				Int64("egg_id", eggID).
				Str("env_variable", variable.EnvVariable).
				Str("reason", result.Errors.First(VariableField)).
				Msg("variable value rejected")
			return models.NewValidationSet(), newValidationError(variable, result.Errors)
		}

		results = append(results, models.ValidationResult{
			ID:    variable.ID,
			Key:   variable.EnvVariable,
			Value: value,
		})
	}

	return models.NewValidationSet(results...), nil
}
