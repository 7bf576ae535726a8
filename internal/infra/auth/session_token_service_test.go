package auth

import (
	"testing"
	"time"

	"ngopi/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *sessionTokenService {
	t.Helper()

	svc, err := NewSessionTokenService(&config.Config{
		Session: &config.SessionConfig{
			Secret: "test-secret-key",
			TTL:    time.Hour,
		},
	})
	require.NoError(t, err)

	return svc.(*sessionTokenService)
}

func TestNewSessionTokenService_RequiresSecret(t *testing.T) {
	_, err := NewSessionTokenService(&config.Config{})
	assert.Error(t, err)

	_, err = NewSessionTokenService(&config.Config{Session: &config.SessionConfig{}})
	assert.Error(t, err)
}

func TestSessionTokenService_IssueAndValidate(t *testing.T) {
	svc := newTestTokenService(t)
	sessionID := uuid.New()

	token, expiresAt, err := svc.IssueSessionToken(sessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, tokenTypeSession, claims.Type)
	assert.Equal(t, sessionID.String(), claims.Subject)
}

func TestSessionTokenService_RejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	other, err := NewSessionTokenService(&config.Config{
		Session: &config.SessionConfig{Secret: "a-different-secret", TTL: time.Hour},
	})
	require.NoError(t, err)

	token, _, err := svc.IssueSessionToken(uuid.New())
	require.NoError(t, err)

	_, err = other.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionTokenService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)
	svc.ttl = -time.Minute

	token, _, err := svc.IssueSessionToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionTokenService_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t)

	_, err := svc.ValidateSessionToken("not-a-token")
	assert.Error(t, err)

	_, err = svc.ValidateSessionToken("")
	assert.Error(t, err)
}
