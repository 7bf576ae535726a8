package middleware

import (
	"strings"

	"ngopi/config"
	"ngopi/internal/delivery/http/response"
	"ngopi/internal/domain/service"
	"ngopi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// sessionIDKey stores the authenticated session ID in echo.Context.
	sessionIDKey = "sessionID"

	// HeaderCuratorKey carries the shared curator secret.
	HeaderCuratorKey = "X-Curator-Key"
)

// AuthMiddleware guards routes that need an anonymous session or the curator key.
type AuthMiddleware struct {
	sessionUC      usecase.SessionUsecase
	keyHasher      service.KeyHasher
	curatorKeyHash string
}

// AuthMiddlewareParams holds dependencies for the auth middleware, injected by Fx
type AuthMiddlewareParams struct {
	fx.In

	Config    *config.Config
	SessionUC usecase.SessionUsecase
	KeyHasher service.KeyHasher
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	m := &AuthMiddleware{
		sessionUC: params.SessionUC,
		keyHasher: params.KeyHasher,
	}
	if params.Config.Curator != nil {
		m.curatorKeyHash = params.Config.Curator.KeyHash
	}

	return m
}

// RequireSession validates the bearer session token and stores the session ID
// in the echo context.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.Unauthorized(c, "SESSION_REQUIRED", "Sesi diperlukan")
		}

		sessionID, err := m.sessionUC.ValidateSession(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(sessionIDKey, sessionID)

		return next(c)
	}
}

// RequireCuratorKey checks the shared curator key. A deployment without a
// configured key hash has no curator surface; those routes answer 404.
func (m *AuthMiddleware) RequireCuratorKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.curatorKeyHash == "" {
			return response.NotFound(c, "NOT_FOUND", "")
		}

		key := c.Request().Header.Get(HeaderCuratorKey)
		if key == "" || !m.keyHasher.Check(key, m.curatorKeyHash) {
			return response.Forbidden(c, "CURATOR_KEY_INVALID", "Kunci kurator tidak valid")
		}

		return next(c)
	}
}

// GetSessionID returns the session ID stored by RequireSession.
func GetSessionID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(sessionIDKey).(uuid.UUID); ok {
		return id
	}

	return uuid.Nil
}
