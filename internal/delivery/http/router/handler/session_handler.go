package handler

import (
	"net/http"

	"ngopi/internal/delivery/http/response"
	"ngopi/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandler issues anonymous contributor sessions.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
}

// SessionHandlerParams holds dependencies for the session handler, injected by Fx
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
	}
}

// IssueSession creates a fresh anonymous session. No body, no credentials;
// the returned token is the contributor's whole identity.
func (h *SessionHandler) IssueSession(c echo.Context) error {
	session, err := h.sessionUC.IssueSession(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session, "")
}
