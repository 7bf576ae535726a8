package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "ngopi/internal/domain/errors"
	"ngopi/internal/domain/service"
	mockService "ngopi/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_IssueSession_Success(t *testing.T) {
	mockTokenSvc := mockService.NewMockTokenService(t)
	svc := NewSessionService(mockTokenSvc)

	expiresAt := time.Now().Add(24 * time.Hour)
	var issuedID uuid.UUID
	mockTokenSvc.EXPECT().
		IssueSessionToken(mock.AnythingOfType("uuid.UUID")).
		Run(func(sessionID uuid.UUID) {
			issuedID = sessionID
		}).
		Return("signed-token", expiresAt, nil).
		Once()

	session, err := svc.IssueSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, issuedID, session.ID)
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, "signed-token", session.Token)
	assert.Equal(t, expiresAt, session.ExpiresAt)
}

func TestSessionService_IssueSession_TokenFailure(t *testing.T) {
	mockTokenSvc := mockService.NewMockTokenService(t)
	svc := NewSessionService(mockTokenSvc)

	mockTokenSvc.EXPECT().
		IssueSessionToken(mock.AnythingOfType("uuid.UUID")).
		Return("", time.Time{}, assert.AnError).
		Once()

	session, err := svc.IssueSession(context.Background())
	assert.Nil(t, session)
	require.Error(t, err)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "SESSION_ISSUE_FAILED", appErr.ErrorCode())
}

func TestSessionService_ValidateSession_Success(t *testing.T) {
	mockTokenSvc := mockService.NewMockTokenService(t)
	svc := NewSessionService(mockTokenSvc)

	sessionID := uuid.New()
	mockTokenSvc.EXPECT().
		ValidateSessionToken("signed-token").
		Return(&service.SessionClaims{SessionID: sessionID}, nil).
		Once()

	got, err := svc.ValidateSession("signed-token")
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestSessionService_ValidateSession_InvalidToken(t *testing.T) {
	mockTokenSvc := mockService.NewMockTokenService(t)
	svc := NewSessionService(mockTokenSvc)

	mockTokenSvc.EXPECT().
		ValidateSessionToken("garbage").
		Return(nil, assert.AnError).
		Once()

	got, err := svc.ValidateSession("garbage")
	assert.Equal(t, uuid.Nil, got)
	assert.Equal(t, domainerrors.ErrSessionInvalid, err)
}
