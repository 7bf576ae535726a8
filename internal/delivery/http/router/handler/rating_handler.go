package handler

import (
	"net/http"

	"ngopi/internal/delivery/http/middleware"
	"ngopi/internal/delivery/http/response"
	"ngopi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RatingHandler serves the rating endpoints of a cafe.
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
}

// RatingHandlerParams holds dependencies for the rating handler, injected by Fx
type RatingHandlerParams struct {
	fx.In

	RatingUC usecase.RatingUsecase
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{
		ratingUC: params.RatingUC,
	}
}

// ListRatings handles GET /cafes/:id/ratings.
func (h *RatingHandler) ListRatings(c echo.Context) error {
	cafeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CAFE_ID", "ID kafe tidak valid")
	}

	ratings, err := h.ratingUC.GetCafeRatings(c.Request().Context(), cafeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ratings, "")
}

// CreateRating handles POST /cafes/:id/ratings. The rating is attributed to
// the authenticated session.
func (h *RatingHandler) CreateRating(c echo.Context) error {
	cafeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CAFE_ID", "ID kafe tidak valid")
	}

	var input usecase.RatingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Payload tidak dapat dibaca")
	}

	sessionID := middleware.GetSessionID(c)
	rating, err := h.ratingUC.AddRating(c.Request().Context(), cafeID, sessionID.String(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, rating, "")
}
