package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/service"
	"github.com/MKhiriev/go-panel/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	parseFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) CreateToken(_ context.Context, userID int64, rootAdmin bool) (models.Token, error) {
	return models.Token{SignedString: "stub-token", UserID: userID, RootAdmin: rootAdmin}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseFn != nil {
		return m.parseFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// stubTokens accepts "admin-token" as user 1 with root admin rights and
// "user-token" as user 2 without.
func stubTokens() *mockAuthService {
	return &mockAuthService{
		parseFn: func(_ context.Context, tokenString string) (models.Token, error) {
			switch tokenString {
			case "admin-token":
				return models.Token{UserID: 1, RootAdmin: true}, nil
			case "user-token":
				return models.Token{UserID: 2}, nil
			default:
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
		},
	}
}

type mockAppInfoService struct {
	info models.AppInfo
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	return m.info
}

type mockStartupService struct {
	validateFn func(ctx context.Context, req models.ValidateVariablesRequest) (models.ValidationSet, error)
	updateFn   func(ctx context.Context, req models.UpdateStartupRequest) (models.ValidationSet, error)
	getFn      func(ctx context.Context, req models.GetStartupRequest) ([]models.StartupVariable, error)
	createFn   func(ctx context.Context, req models.CreateServerRequest) (models.Server, error)
}

func (m *mockStartupService) GetStartup(ctx context.Context, req models.GetStartupRequest) ([]models.StartupVariable, error) {
	if m.getFn != nil {
		return m.getFn(ctx, req)
	}
	return []models.StartupVariable{}, nil
}

func (m *mockStartupService) ValidateVariables(ctx context.Context, req models.ValidateVariablesRequest) (models.ValidationSet, error) {
	if m.validateFn != nil {
		return m.validateFn(ctx, req)
	}
	return models.NewValidationSet(), nil
}

func (m *mockStartupService) UpdateStartup(ctx context.Context, req models.UpdateStartupRequest) (models.ValidationSet, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, req)
	}
	return models.NewValidationSet(), nil
}

func (m *mockStartupService) CreateServer(ctx context.Context, req models.CreateServerRequest) (models.Server, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.Server{}, nil
}

type mockEggService struct {
	importFn func(ctx context.Context, egg models.Egg) (models.Egg, error)
}

func (m *mockEggService) ImportEgg(ctx context.Context, egg models.Egg) (models.Egg, error) {
	if m.importFn != nil {
		return m.importFn(ctx, egg)
	}
	return egg, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds the full router with stub tokens and the given
// services; nil services get no-op mocks.
func newTestRouter(startup service.StartupService, eggs service.EggService) http.Handler {
	if startup == nil {
		startup = &mockStartupService{}
	}
	if eggs == nil {
		eggs = &mockEggService{}
	}

	h := NewHandler(&service.Services{
		AuthService:    stubTokens(),
		AppInfoService: &mockAppInfoService{info: models.AppInfo{Version: "test-version"}},
		StartupService: startup,
		EggService:     eggs,
	}, logger.Nop())

	return h.Init()
}
