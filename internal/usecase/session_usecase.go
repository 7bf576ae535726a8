// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"ngopi/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for anonymous contributor sessions
type SessionUsecase interface {
	// IssueSession creates a fresh anonymous session with a signed token
	IssueSession(ctx context.Context) (*entity.Session, error)

	// ValidateSession checks a bearer token and returns the session ID it
	// carries. Invalid or expired tokens fail with a session AppError.
	ValidateSession(token string) (uuid.UUID, error)
}
