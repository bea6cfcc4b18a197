package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/service"
	"github.com/MKhiriev/go-panel/internal/store"
	"github.com/MKhiriev/go-panel/internal/utils"
	"github.com/MKhiriev/go-panel/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrInvalidYAML:      http.StatusBadRequest,
	ErrInvalidPathParam: http.StatusBadRequest,
	ErrInvalidGzip:      http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrAdminRequired:           http.StatusForbidden,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	validators.ErrDisplayValidation: http.StatusBadRequest,

	store.ErrEggAlreadyExists:  http.StatusConflict,
	store.ErrDuplicateVariable: http.StatusConflict,
	store.ErrEggNotFound:       http.StatusNotFound,
	store.ErrServerNotFound:    http.StatusNotFound,
	store.ErrUnknownVariable:   http.StatusUnprocessableEntity,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError writes err as a JSON response. A variable validation failure
// is written as its message payload; server errors hide their details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		log.Debug().Str("variable", validationErr.Variable).Msg("variable validation failed")
		utils.WriteJSON(w, validationErr.Payload(), http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
