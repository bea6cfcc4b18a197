package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-panel/internal/config"
	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/utils"
	"github.com/MKhiriev/go-panel/models"
)

// authService issues and verifies bearer tokens. The root_admin claim of a
// verified token is the only source of the administrator flag used by the
// variable pass.
type authService struct {
	signer *utils.TokenSigner
	logger *logger.Logger
}

func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		signer: utils.NewTokenSigner(cfg.TokenIssuer, cfg.TokenDuration, cfg.TokenSignKey),
		logger: logger,
	}
}

func (a *authService) CreateToken(ctx context.Context, userID int64, rootAdmin bool) (models.Token, error) {
	token, err := a.signer.Sign(userID, rootAdmin)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken hides the verification failure behind ErrTokenIsExpiredOrInvalid;
// the cause is logged at debug level.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.signer.Verify(tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
