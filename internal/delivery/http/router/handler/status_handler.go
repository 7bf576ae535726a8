package handler

import (
	"net/http"

	"ngopi/internal/delivery/http/response"
	"ngopi/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StatusHandler serves liveness and rate-limit introspection.
type StatusHandler struct {
	cafeUC usecase.CafeUsecase
}

// StatusHandlerParams holds dependencies for the status handler, injected by Fx
type StatusHandlerParams struct {
	fx.In

	CafeUC usecase.CafeUsecase
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(params StatusHandlerParams) *StatusHandler {
	return &StatusHandler{
		cafeUC: params.CafeUC,
	}
}

// Health reports liveness together with the store's request window, so a
// client can see how much Sheets budget is left before it throttles.
func (h *StatusHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":    "ok",
		"rateLimit": h.cafeUC.RateLimitInfo(),
	}, "")
}

// RateLimit reports the current admission window.
func (h *StatusHandler) RateLimit(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cafeUC.RateLimitInfo(), "")
}
