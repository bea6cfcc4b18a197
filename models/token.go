// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set of a panel bearer token. The subject is the
// panel user id; root_admin lifts the per-variable visibility rules.
type Claims struct {
	jwt.RegisteredClaims

	RootAdmin bool `json:"root_admin"`
}

// Token is an issued or verified bearer token.
type Token struct {
	SignedString string    `json:"token"`
	UserID       int64     `json:"user_id"`
	RootAdmin    bool      `json:"root_admin"`
	ExpiresAt    time.Time `json:"expires_at"`
}
