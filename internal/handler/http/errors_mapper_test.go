package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-panel/internal/service"
	"github.com/MKhiriev/go-panel/internal/store"
	"github.com/MKhiriev/go-panel/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEggID), http.StatusBadRequest},
		{"admin required", service.ErrAdminRequired, http.StatusForbidden},
		{"token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"display validation", validators.ErrDisplayValidation, http.StatusBadRequest},
		{"egg exists", fmt.Errorf("egg import failed: %w", store.ErrEggAlreadyExists), http.StatusConflict},
		{"egg not found", store.ErrEggNotFound, http.StatusNotFound},
		{"server not found", store.ErrServerNotFound, http.StatusNotFound},
		{"unknown variable", store.ErrUnknownVariable, http.StatusUnprocessableEntity},
		{"scan failure", store.ErrScanningRows, http.StatusInternalServerError},
		{"unmapped", errors.New("unmapped"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
