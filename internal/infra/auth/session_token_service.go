// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ngopi/config"
	"ngopi/internal/domain/service"
	"ngopi/internal/errors"
)

// tokenTypeSession marks tokens minted for anonymous contributor sessions.
const tokenTypeSession = "session"

// defaultSessionTTL applies when the config leaves the lifetime unset.
// Anonymous sessions are long-lived; losing one orphans the contributor's
// rating history.
const defaultSessionTTL = 30 * 24 * time.Hour

// sessionTokenService is a concrete implementation of the TokenService interface using the JWT standard.
type sessionTokenService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewSessionTokenService is the constructor for sessionTokenService.
// A missing signing secret fails construction, never the first request.
func NewSessionTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session token secret must be provided")
	}

	ttl := cfg.Session.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &sessionTokenService{
		secret: []byte(cfg.Session.Secret),
		ttl:    ttl,
	}, nil
}

// IssueSessionToken mints a signed token for a fresh session ID.
func (s *sessionTokenService) IssueSessionToken(sessionID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := &service.SessionClaims{
		SessionID: sessionID,
		Type:      tokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign session token")
	}

	return token, expiresAt, nil
}

// ValidateSessionToken checks the signature, type and expiry of a token string.
func (s *sessionTokenService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.SessionClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}

	claims, ok := token.Claims.(*service.SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token claims")
	}

	if claims.Type != tokenTypeSession {
		return nil, errors.New("unexpected token type")
	}

	if claims.SessionID == uuid.Nil {
		return nil, errors.New("session token carries no session id")
	}

	return claims, nil
}
