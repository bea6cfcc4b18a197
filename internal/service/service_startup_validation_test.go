package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-panel/internal/validators"
	"github.com/MKhiriev/go-panel/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerStartupService struct {
	validateFn func(ctx context.Context, req models.ValidateVariablesRequest) (models.ValidationSet, error)
	updateFn   func(ctx context.Context, req models.UpdateStartupRequest) (models.ValidationSet, error)
	getFn      func(ctx context.Context, req models.GetStartupRequest) ([]models.StartupVariable, error)
	createFn   func(ctx context.Context, req models.CreateServerRequest) (models.Server, error)
	calls      int
}

func (m *mockInnerStartupService) GetStartup(ctx context.Context, req models.GetStartupRequest) ([]models.StartupVariable, error) {
	m.calls++
	if m.getFn != nil {
		return m.getFn(ctx, req)
	}
	return []models.StartupVariable{}, nil
}

func (m *mockInnerStartupService) ValidateVariables(ctx context.Context, req models.ValidateVariablesRequest) (models.ValidationSet, error) {
	m.calls++
	if m.validateFn != nil {
		return m.validateFn(ctx, req)
	}
	return models.NewValidationSet(), nil
}

func (m *mockInnerStartupService) UpdateStartup(ctx context.Context, req models.UpdateStartupRequest) (models.ValidationSet, error) {
	m.calls++
	if m.updateFn != nil {
		return m.updateFn(ctx, req)
	}
	return models.NewValidationSet(), nil
}

func (m *mockInnerStartupService) CreateServer(ctx context.Context, req models.CreateServerRequest) (models.Server, error) {
	m.calls++
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.Server{}, nil
}

func newWrappedStartupService(inner StartupService) StartupService {
	return NewStartupValidationService().Wrap(inner)
}

// ─────────────────────────────────────────────
// ValidateVariables
// ─────────────────────────────────────────────

func TestStartupValidation_ValidateVariables_Delegates(t *testing.T) {
	want := models.NewValidationSet(models.ValidationResult{ID: 1, Key: "PORT", Value: "25565"})
	inner := &mockInnerStartupService{
		validateFn: func(_ context.Context, req models.ValidateVariablesRequest) (models.ValidationSet, error) {
			assert.Equal(t, int64(4), req.EggID)
			return want, nil
		},
	}

	got, err := newWrappedStartupService(inner).ValidateVariables(userCtx(), models.ValidateVariablesRequest{
		EggID:       4,
		Environment: map[string]string{"PORT": "25565"},
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, inner.calls)
}

func TestStartupValidation_ValidateVariables_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ValidateVariablesRequest
		wantErr error
	}{
		{"zero egg", models.ValidateVariablesRequest{Environment: map[string]string{}}, validators.ErrInvalidEggID},
		{"nil environment", models.ValidateVariablesRequest{EggID: 1}, validators.ErrEmptyEnvironment},
		{"bad key", models.ValidateVariablesRequest{EggID: 1, Environment: map[string]string{"BAD KEY": "x"}}, validators.ErrInvalidEnvironmentKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockInnerStartupService{}

			_, err := newWrappedStartupService(inner).ValidateVariables(userCtx(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, inner.calls)
		})
	}
}

// ─────────────────────────────────────────────
// UpdateStartup
// ─────────────────────────────────────────────

func TestStartupValidation_UpdateStartup_Delegates(t *testing.T) {
	inner := &mockInnerStartupService{}

	_, err := newWrappedStartupService(inner).UpdateStartup(userCtx(), models.UpdateStartupRequest{
		ServerID:    9,
		Environment: map[string]string{"BUILD_NUMBER": "latest"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestStartupValidation_UpdateStartup_InvalidServer(t *testing.T) {
	inner := &mockInnerStartupService{}

	_, err := newWrappedStartupService(inner).UpdateStartup(userCtx(), models.UpdateStartupRequest{
		ServerID:    -1,
		Environment: map[string]string{},
	})

	assert.ErrorIs(t, err, validators.ErrInvalidServerID)
	assert.Zero(t, inner.calls)
}

// ─────────────────────────────────────────────
// CreateServer
// ─────────────────────────────────────────────

func TestStartupValidation_CreateServer_RequiresAdmin(t *testing.T) {
	inner := &mockInnerStartupService{}

	_, err := newWrappedStartupService(inner).CreateServer(userCtx(), models.CreateServerRequest{
		Name:  "Survival",
		EggID: 3,
	})

	assert.ErrorIs(t, err, ErrAdminRequired)
	assert.Zero(t, inner.calls)
}

func TestStartupValidation_CreateServer_InvalidName(t *testing.T) {
	inner := &mockInnerStartupService{}

	_, err := newWrappedStartupService(inner).CreateServer(adminCtx(), models.CreateServerRequest{EggID: 3})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidServerName)
	assert.Zero(t, inner.calls)
}

func TestStartupValidation_CreateServer_Delegates(t *testing.T) {
	inner := &mockInnerStartupService{
		createFn: func(_ context.Context, req models.CreateServerRequest) (models.Server, error) {
			return models.Server{ID: 1, Name: req.Name, EggID: req.EggID}, nil
		},
	}

	server, err := newWrappedStartupService(inner).CreateServer(adminCtx(), models.CreateServerRequest{
		Name:  "Survival",
		EggID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, "Survival", server.Name)
}

// ─────────────────────────────────────────────
// GetStartup
// ─────────────────────────────────────────────

func TestStartupValidation_GetStartup(t *testing.T) {
	t.Run("delegates", func(t *testing.T) {
		inner := &mockInnerStartupService{}

		_, err := newWrappedStartupService(inner).GetStartup(userCtx(), models.GetStartupRequest{ServerID: 3})

		require.NoError(t, err)
		assert.Equal(t, 1, inner.calls)
	})

	t.Run("invalid server id", func(t *testing.T) {
		inner := &mockInnerStartupService{}

		got, err := newWrappedStartupService(inner).GetStartup(userCtx(), models.GetStartupRequest{})

		require.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrInvalidServerID)
		assert.Nil(t, got)
		assert.Zero(t, inner.calls)
	})
}
