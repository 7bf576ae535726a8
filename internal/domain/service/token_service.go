// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the custom claims for anonymous session tokens.
type SessionClaims struct {
	SessionID uuid.UUID `json:"sid"`
	Type      string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating anonymous
// session tokens. Sessions carry no account; the session ID is the whole identity.
type TokenService interface {
	// IssueSessionToken mints a signed token for a fresh session ID.
	IssueSessionToken(sessionID uuid.UUID) (token string, expiresAt time.Time, err error)

	// ValidateSessionToken checks the signature, type and expiry of a token string.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)
}
