package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/utils"
	"github.com/MKhiriev/go-panel/internal/validators"
	"github.com/MKhiriev/go-panel/models"
)

// StartupValidationService rejects malformed startup requests before they
// reach the wrapped StartupService.
type StartupValidationService struct {
	inner     StartupService
	validator validators.Validator
}

func NewStartupValidationService() StartupServiceWrapper {
	return &StartupValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *StartupValidationService) ValidateVariables(ctx context.Context, request models.ValidateVariablesRequest) (models.ValidationSet, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("egg_id", request.EggID).Msg("invalid validate variables request")
		return models.NewValidationSet(), fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ValidateVariables(ctx, request)
}

func (v *StartupValidationService) UpdateStartup(ctx context.Context, request models.UpdateStartupRequest) (models.ValidationSet, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("server_id", request.ServerID).Msg("invalid update startup request")
		return models.NewValidationSet(), fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateStartup(ctx, request)
}

func (v *StartupValidationService) GetStartup(ctx context.Context, request models.GetStartupRequest) ([]models.StartupVariable, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetStartup(ctx, request)
}

func (v *StartupValidationService) CreateServer(ctx context.Context, request models.CreateServerRequest) (models.Server, error) {
	if !utils.IsRootAdmin(ctx) {
		return models.Server{}, ErrAdminRequired
	}

	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("egg_id", request.EggID).Msg("invalid create server request")
		return models.Server{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateServer(ctx, request)
}

func (v *StartupValidationService) Wrap(inner StartupService) StartupService {
	v.inner = inner
	return v
}
