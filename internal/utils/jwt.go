package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-panel/models"
)

var (
	ErrSignerNotConfigured = errors.New("token signer needs an issuer, a duration and a sign key")
	ErrBadSubject          = errors.New("token subject is not a user id")
	ErrNotBearer           = errors.New("authorization header is not a bearer token")
)

// TokenSigner issues and verifies HS256 panel tokens for one issuer.
type TokenSigner struct {
	issuer   string
	duration time.Duration
	key      []byte

	now func() time.Time
}

func NewTokenSigner(issuer string, duration time.Duration, signKey string) *TokenSigner {
	return &TokenSigner{issuer: issuer, duration: duration, key: []byte(signKey), now: time.Now}
}

// Sign issues a token for userID that expires after the signer's duration.
func (s *TokenSigner) Sign(userID int64, rootAdmin bool) (models.Token, error) {
	if s.issuer == "" || s.duration <= 0 || len(s.key) == 0 {
		return models.Token{}, ErrSignerNotConfigured
	}

	issued := s.now()
	expires := issued.Add(s.duration)
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		RootAdmin: rootAdmin,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing token for user %d: %w", userID, err)
	}

	return models.Token{
		SignedString: signed,
		UserID:       userID,
		RootAdmin:    rootAdmin,
		ExpiresAt:    claims.ExpiresAt.UTC(),
	}, nil
}

// Verify checks the signature, issuer and expiry of signed and returns the
// token it carries. Only HS256 is accepted.
func (s *TokenSigner) Verify(signed string) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error verifying token: %w", err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %q", ErrBadSubject, claims.Subject)
	}

	return models.Token{
		SignedString: signed,
		UserID:       userID,
		RootAdmin:    claims.RootAdmin,
		ExpiresAt:    claims.ExpiresAt.UTC(),
	}, nil
}

// BearerToken returns the token of an "Authorization: Bearer <token>"
// header value. The scheme is case-insensitive.
func BearerToken(header string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrNotBearer
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrNotBearer
	}
	return token, nil
}
