package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/rules"
	"github.com/MKhiriev/go-panel/internal/store"
	"github.com/MKhiriev/go-panel/models"
)

type eggService struct {
	eggRepository store.EggRepository

	logger *logger.Logger
}

func NewEggService(eggRepository store.EggRepository, logger *logger.Logger) EggService {
	return &eggService{
		eggRepository: eggRepository,
		logger:        logger,
	}
}

// ImportEgg stores egg and its variable definitions. Rule strings are stored
// in canonical form: trimmed and without empty segments.
func (e *eggService) ImportEgg(ctx context.Context, egg models.Egg) (models.Egg, error) {
	egg, err := canonicalRules(egg)
	if err != nil {
		return models.Egg{}, fmt.Errorf("egg import failed: %w", err)
	}

	created, err := e.eggRepository.CreateEgg(ctx, egg)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("egg", egg.Name).Msg("egg import failed")
		return models.Egg{}, fmt.Errorf("egg import failed: %w", err)
	}

	return created, nil
}

func canonicalRules(egg models.Egg) (models.Egg, error) {
	if len(egg.Variables) == 0 {
		return egg, nil
	}

	variables := make([]models.EggVariable, len(egg.Variables))
	for i, variable := range egg.Variables {
		set, err := rules.Parse(variable.Rules)
		if err != nil {
			return models.Egg{}, fmt.Errorf("rules of %s: %w", variable.EnvVariable, err)
		}
		variable.Rules = set.String()
		variables[i] = variable
	}
	egg.Variables = variables

	return egg, nil
}
