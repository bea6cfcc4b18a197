package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-panel/internal/config"
	"github.com/MKhiriev/go-panel/internal/rules"
	"github.com/MKhiriev/go-panel/models"
)

type appInfoService struct {
	info models.AppInfo
}

// NewAppInfoService reports the configured version, the storage driver, the
// rule names accepted in egg variables and the binary's build stamp.
func NewAppInfoService(cfg config.StructuredConfig, build models.BuildInfo) (AppInfoService, error) {
	if cfg.App.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.AppInfo{
			Version:  cfg.App.Version,
			Database: cfg.Storage.DB.Driver,
			Rules:    rules.Names(),
			Build:    build,
		},
	}, nil
}

func (s *appInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	info := s.info
	info.Rules = slices.Clone(s.info.Rules)
	return info
}
