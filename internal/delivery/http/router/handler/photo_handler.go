package handler

import (
	"net/http"

	"ngopi/internal/delivery/http/response"
	"ngopi/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PhotoHandler accepts photo uploads for cafes and ratings.
type PhotoHandler struct {
	photoUC usecase.PhotoUsecase
}

// PhotoHandlerParams holds dependencies for the photo handler, injected by Fx
type PhotoHandlerParams struct {
	fx.In

	PhotoUC usecase.PhotoUsecase
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(params PhotoHandlerParams) *PhotoHandler {
	return &PhotoHandler{
		photoUC: params.PhotoUC,
	}
}

// UploadPhoto streams the request body into photo storage. Content type and
// size limits are enforced by the storage layer.
func (h *PhotoHandler) UploadPhoto(c echo.Context) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	url, err := h.photoUC.UploadPhoto(c.Request().Context(), contentType, c.Request().Body)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "")
}
