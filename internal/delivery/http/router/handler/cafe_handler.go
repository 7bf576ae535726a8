package handler

import (
	"net/http"
	"strconv"
	"strings"

	"ngopi/internal/delivery/http/middleware"
	"ngopi/internal/delivery/http/response"
	"ngopi/internal/domain/entity"
	"ngopi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CafeHandler serves the cafe discovery and contribution endpoints.
type CafeHandler struct {
	cafeUC usecase.CafeUsecase
}

// CafeHandlerParams holds dependencies for the cafe handler, injected by Fx
type CafeHandlerParams struct {
	fx.In

	CafeUC usecase.CafeUsecase
}

// NewCafeHandler creates a new cafe handler
func NewCafeHandler(params CafeHandlerParams) *CafeHandler {
	return &CafeHandler{
		cafeUC: params.CafeUC,
	}
}

// batchCafesRequest is the curator bulk import payload.
type batchCafesRequest struct {
	Cafes []*usecase.CafeInput `json:"cafes" validate:"required,min=1"`
}

// verifyCafeRequest moves a listing to a new verification status.
type verifyCafeRequest struct {
	Status string `json:"status" validate:"required,oneof=unverified verified premium"`
}

// ListCafes handles GET /cafes with filter criteria in the query string.
func (h *CafeHandler) ListCafes(c echo.Context) error {
	filter, err := parseCafeFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", err.Error())
	}

	cafes, err := h.cafeUC.GetCafes(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cafes, "")
}

// GetCafe handles GET /cafes/:id.
func (h *CafeHandler) GetCafe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CAFE_ID", "ID kafe tidak valid")
	}

	cafe, err := h.cafeUC.GetCafeByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cafe, "")
}

// CreateCafe handles POST /cafes. The authenticated session becomes the
// listing's contributor.
func (h *CafeHandler) CreateCafe(c echo.Context) error {
	var input usecase.CafeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Payload tidak dapat dibaca")
	}

	cafe, err := h.cafeUC.AddCafe(c.Request().Context(), middleware.GetSessionID(c), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, cafe, "")
}

// UpdateCafe handles PUT /cafes/:id as a full overwrite of the client-editable
// fields. Identity, community state and creation time stay server-owned.
func (h *CafeHandler) UpdateCafe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CAFE_ID", "ID kafe tidak valid")
	}

	var input usecase.CafeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Payload tidak dapat dibaca")
	}

	cafe, err := h.cafeUC.GetCafeByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cafe.Name = input.Name
	cafe.Address = input.Address
	cafe.Location = input.Location
	cafe.Metrics = input.Metrics
	cafe.Amenities = input.Amenities
	cafe.Hours = input.Hours
	cafe.Images = input.Images

	updated, err := h.cafeUC.UpdateCafe(c.Request().Context(), cafe)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated, "")
}

// BatchCreateCafes handles POST /cafes/batch for curator imports.
func (h *CafeHandler) BatchCreateCafes(c echo.Context) error {
	var req batchCafesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Payload tidak dapat dibaca")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	cafes, err := h.cafeUC.BatchAddCafes(c.Request().Context(), req.Cafes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, cafes, "")
}

// VerifyCafe handles POST /cafes/:id/verify for curators.
func (h *CafeHandler) VerifyCafe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CAFE_ID", "ID kafe tidak valid")
	}

	var req verifyCafeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Payload tidak dapat dibaca")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	cafe, err := h.cafeUC.VerifyCafe(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cafe, "")
}

// ShareQR handles GET /cafes/:id/qr, returning the share QR code as PNG.
func (h *CafeHandler) ShareQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CAFE_ID", "ID kafe tidak valid")
	}

	png, err := h.cafeUC.ShareQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// parseCafeFilter builds the listing filter from the query string.
func parseCafeFilter(c echo.Context) (entity.CafeFilter, error) {
	filter := entity.CafeFilter{
		City:               c.QueryParam("city"),
		District:           c.QueryParam("district"),
		WifiSpeed:          c.QueryParam("wifiSpeed"),
		NoiseLevel:         c.QueryParam("noise"),
		VerificationStatus: c.QueryParam("verified"),
	}

	if raw := c.QueryParam("minComfort"); raw != "" {
		minComfort, err := strconv.Atoi(raw)
		if err != nil {
			return entity.CafeFilter{}, errInvalidQueryParam("minComfort")
		}
		filter.MinComfortRating = minComfort
	}

	if raw := c.QueryParam("amenities"); raw != "" {
		for _, amenity := range strings.Split(raw, ",") {
			if amenity = strings.TrimSpace(amenity); amenity != "" {
				filter.Amenities = append(filter.Amenities, amenity)
			}
		}
	}

	// Geo criterion needs all three of lat, lng, radiusKm.
	latRaw, lngRaw, radiusRaw := c.QueryParam("lat"), c.QueryParam("lng"), c.QueryParam("radiusKm")
	if latRaw != "" || lngRaw != "" || radiusRaw != "" {
		lat, err := strconv.ParseFloat(latRaw, 64)
		if err != nil {
			return entity.CafeFilter{}, errInvalidQueryParam("lat")
		}
		lng, err := strconv.ParseFloat(lngRaw, 64)
		if err != nil {
			return entity.CafeFilter{}, errInvalidQueryParam("lng")
		}
		radius, err := strconv.ParseFloat(radiusRaw, 64)
		if err != nil {
			return entity.CafeFilter{}, errInvalidQueryParam("radiusKm")
		}
		filter.Near = &entity.GeoFilter{Latitude: lat, Longitude: lng, RadiusKM: radius}
	}

	return filter, nil
}

func errInvalidQueryParam(name string) error {
	return errors.Errorf("invalid query parameter: %s", name)
}
