package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/utils"
	"github.com/MKhiriev/go-panel/models"
)

const bearerChallenge = `Bearer realm="go-panel"`

// auth requires a valid bearer token and runs next as the token's user.
// The user id and root administrator flag are stored with utils.WithUser.
// Every failure answers 401 with a bearer challenge.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := h.authenticate(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("request not authenticated")

			message := http.StatusText(http.StatusUnauthorized)
			if errors.Is(err, ErrEmptyAuthorizationHeader) || errors.Is(err, ErrInvalidAuthorizationHeader) {
				message = err.Error()
			}
			w.Header().Set("WWW-Authenticate", bearerChallenge)
			utils.WriteError(w, message, http.StatusUnauthorized)
			return
		}

		ctx := utils.WithUser(r.Context(), token.UserID, token.RootAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) authenticate(r *http.Request) (models.Token, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return models.Token{}, ErrEmptyAuthorizationHeader
	}

	raw, err := utils.BearerToken(header)
	if err != nil {
		return models.Token{}, ErrInvalidAuthorizationHeader
	}

	return h.services.AuthService.ParseToken(r.Context(), raw)
}
