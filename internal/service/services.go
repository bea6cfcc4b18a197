package service

import (
	"fmt"

	"github.com/MKhiriev/go-panel/internal/config"
	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/rules"
	"github.com/MKhiriev/go-panel/internal/store"
	"github.com/MKhiriev/go-panel/internal/utils"
	"github.com/MKhiriev/go-panel/internal/validators"
	"github.com/MKhiriev/go-panel/models"
)

type Services struct {
	AuthService    AuthService
	StartupService StartupService
	EggService     EggService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.BuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, build)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	variableValidator := validators.NewVariableValidator(storages.EggVariableRepository, rules.New())

	return &Services{
		AuthService: NewAuthService(cfg.App, logger),
		StartupService: NewStartupValidationService().Wrap(
			NewStartupService(variableValidator, storages, utils.IDGenerator{}, logger),
		),
		EggService:     NewEggValidationService().Wrap(NewEggService(storages.EggRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
