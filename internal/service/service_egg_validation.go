package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-panel/internal/utils"
	"github.com/MKhiriev/go-panel/internal/validators"
	"github.com/MKhiriev/go-panel/models"
)

// EggValidationService checks egg documents, including every variable's
// rule string, before they are stored. Only root administrators may import
// eggs.
type EggValidationService struct {
	inner     EggService
	validator validators.Validator
}

func NewEggValidationService() EggServiceWrapper {
	return &EggValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *EggValidationService) ImportEgg(ctx context.Context, egg models.Egg) (models.Egg, error) {
	if !utils.IsRootAdmin(ctx) {
		return models.Egg{}, ErrAdminRequired
	}

	if err := v.validator.Validate(ctx, egg); err != nil {
		return models.Egg{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ImportEgg(ctx, egg)
}

func (v *EggValidationService) Wrap(inner EggService) EggService {
	v.inner = inner
	return v
}
