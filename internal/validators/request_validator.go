package validators

import (
	"context"
	"fmt"
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-panel/internal/rules"
	"github.com/MKhiriev/go-panel/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEggID targets the egg referenced by a request.
	FieldEggID = "egg_id"

	// FieldServerID targets the server referenced by a request.
	FieldServerID = "server_id"

	// FieldEnvironment targets the submitted environment map.
	FieldEnvironment = "environment"

	// FieldName targets the display name of a server or egg.
	FieldName = "name"

	// FieldVariables targets the variable definitions of an egg.
	FieldVariables = "variables"
)

const envKeyTag = "envkey"

var envKeyPattern = regexp.MustCompile(`^\w{1,191}$`)

// reservedEnvNames are set by the daemon for every server and cannot be
// declared by an egg.
var reservedEnvNames = []string{
	"SERVER_MEMORY",
	"SERVER_IP",
	"SERVER_PORT",
	"ENV",
	"HOME",
	"USER",
	"STARTUP",
	"SERVER_UUID",
	"UUID",
}

// RequestValidator checks the shape of incoming requests before any
// business logic runs. Format checks are delegated to go-playground's
// validator with an extra "envkey" tag.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	validate := validator.New()
	_ = validate.RegisterValidation(envKeyTag, func(fl validator.FieldLevel) bool {
		return envKeyPattern.MatchString(fl.Field().String())
	})

	return &RequestValidator{validate: validate}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ValidateVariablesRequest:
		return v.validateVariablesRequest(ctx, value, fields...)
	case *models.ValidateVariablesRequest:
		return v.validateVariablesRequest(ctx, *value, fields...)

	case models.UpdateStartupRequest:
		return v.validateUpdateStartupRequest(ctx, value, fields...)
	case *models.UpdateStartupRequest:
		return v.validateUpdateStartupRequest(ctx, *value, fields...)

	case models.GetStartupRequest:
		return v.validateGetStartupRequest(ctx, value, fields...)
	case *models.GetStartupRequest:
		return v.validateGetStartupRequest(ctx, *value, fields...)

	case models.CreateServerRequest:
		return v.validateCreateServerRequest(ctx, value, fields...)
	case *models.CreateServerRequest:
		return v.validateCreateServerRequest(ctx, *value, fields...)

	case models.Egg:
		return v.validateEgg(ctx, value, fields...)
	case *models.Egg:
		return v.validateEgg(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateVariablesRequest(_ context.Context, request models.ValidateVariablesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEggID, FieldEnvironment}
	}

	for _, f := range fields {
		switch f {
		case FieldEggID:
			if request.EggID <= 0 {
				return ErrInvalidEggID
			}
		case FieldEnvironment:
			if request.Environment == nil {
				return ErrEmptyEnvironment
			}
			if err := v.validateEnvironmentKeys(request.Environment); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateStartupRequest(_ context.Context, request models.UpdateStartupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldServerID, FieldEnvironment}
	}

	for _, f := range fields {
		switch f {
		case FieldServerID:
			if request.ServerID <= 0 {
				return ErrInvalidServerID
			}
		case FieldEnvironment:
			if request.Environment == nil {
				return ErrEmptyEnvironment
			}
			if err := v.validateEnvironmentKeys(request.Environment); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateGetStartupRequest(_ context.Context, request models.GetStartupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldServerID}
	}

	for _, f := range fields {
		switch f {
		case FieldServerID:
			if request.ServerID <= 0 {
				return ErrInvalidServerID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreateServerRequest accepts a missing environment: every variable
// is then validated as null.
func (v *RequestValidator) validateCreateServerRequest(_ context.Context, request models.CreateServerRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEggID, FieldEnvironment}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := v.validate.Var(request.Name, "required,max=191,printascii"); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidServerName, err)
			}
		case FieldEggID:
			if request.EggID <= 0 {
				return ErrInvalidEggID
			}
		case FieldEnvironment:
			if err := v.validateEnvironmentKeys(request.Environment); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateEgg(_ context.Context, egg models.Egg, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldVariables}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := v.validate.Var(egg.Name, "required,max=191"); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidEggName, err)
			}
		case FieldVariables:
			seen := make(map[string]struct{}, len(egg.Variables))
			for i, variable := range egg.Variables {
				if err := v.validateEggVariable(variable); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
				if _, ok := seen[variable.EnvVariable]; ok {
					return fmt.Errorf("validation error at index %d: %w: %s", i, ErrDuplicateEnvironment, variable.EnvVariable)
				}
				seen[variable.EnvVariable] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateEggVariable(variable models.EggVariable) error {
	if err := v.validate.Var(variable.Name, "required,max=191"); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVariableName, err)
	}

	if err := v.validate.Var(variable.EnvVariable, "required,"+envKeyTag); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidEnvironmentKey, variable.EnvVariable, err)
	}

	if slices.Contains(reservedEnvNames, variable.EnvVariable) {
		return fmt.Errorf("%w: %s", ErrReservedEnvironment, variable.EnvVariable)
	}

	if _, err := rules.Parse(variable.Rules); err != nil {
		return fmt.Errorf("%w for %s: %w", ErrInvalidVariableRules, variable.EnvVariable, err)
	}

	return nil
}

func (v *RequestValidator) validateEnvironmentKeys(environment map[string]string) error {
	for key := range environment {
		if err := v.validate.Var(key, envKeyTag); err != nil {
			return fmt.Errorf("%w %q", ErrInvalidEnvironmentKey, key)
		}
	}

	return nil
}
