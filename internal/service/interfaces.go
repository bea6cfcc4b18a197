package service

import (
	"context"

	"github.com/MKhiriev/go-panel/internal/validators"
	"github.com/MKhiriev/go-panel/models"
)

// StartupService validates and stores the startup environment of servers.
type StartupService interface {
	// ValidateVariables runs the variable pass for the egg without storing
	// anything. The admin flag is taken from ctx.
	ValidateVariables(ctx context.Context, request models.ValidateVariablesRequest) (models.ValidationSet, error)

	// UpdateStartup validates the submitted values against the server's egg
	// and stores the accepted ones.
	UpdateStartup(ctx context.Context, request models.UpdateStartupRequest) (models.ValidationSet, error)

	// GetStartup lists the egg variables of a server with their stored
	// values. Variables a non-admin caller cannot view are left out.
	GetStartup(ctx context.Context, request models.GetStartupRequest) ([]models.StartupVariable, error)

	// CreateServer validates the environment as an administrator and creates
	// the server with its variable values.
	CreateServer(ctx context.Context, request models.CreateServerRequest) (models.Server, error)
}

type EggService interface {
	ImportEgg(ctx context.Context, egg models.Egg) (models.Egg, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, userID int64, rootAdmin bool) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// VariableValidator runs the egg variable pass.
type VariableValidator interface {
	Validate(ctx context.Context, eggID int64, opts validators.VariableOptions) (models.ValidationSet, error)
}

// UUIDGenerator produces public server identifiers.
type UUIDGenerator interface {
	Generate() string
}

// StartupServiceWrapper defines middleware composition for StartupService.
// Implementations wrap an existing StartupService to add behavior such as
// logging or validating.
type StartupServiceWrapper interface {
	Wrap(StartupService) StartupService
}

// EggServiceWrapper defines middleware composition for EggService.
type EggServiceWrapper interface {
	Wrap(EggService) EggService
}
