package impl

import (
	"context"

	"ngopi/internal/domain/entity"
	domainerrors "ngopi/internal/domain/errors"
	"ngopi/internal/domain/service"
	"ngopi/internal/usecase"

	"github.com/google/uuid"
)

// sessionService issues and validates anonymous contributor sessions.
type sessionService struct {
	tokenSvc service.TokenService
}

// NewSessionService creates a new session service instance
func NewSessionService(tokenSvc service.TokenService) usecase.SessionUsecase {
	return &sessionService{
		tokenSvc: tokenSvc,
	}
}

// IssueSession creates a fresh anonymous session with a signed token.
func (s *sessionService) IssueSession(ctx context.Context) (*entity.Session, error) {
	sessionID := uuid.New()

	token, expiresAt, err := s.tokenSvc.IssueSessionToken(sessionID)
	if err != nil {
		return nil, domainerrors.ErrSessionIssueFailed.WithDetails(err.Error())
	}

	return &entity.Session{
		ID:        sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateSession checks a bearer token and returns the session ID it carries.
func (s *sessionService) ValidateSession(token string) (uuid.UUID, error) {
	claims, err := s.tokenSvc.ValidateSessionToken(token)
	if err != nil {
		return uuid.Nil, domainerrors.ErrSessionInvalid
	}

	return claims.SessionID, nil
}
