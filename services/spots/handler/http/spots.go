package http

import (
	"errors"
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	"github.com/surfsup-app/surfsup/internal/utils"
	"github.com/surfsup-app/surfsup/services/spots"
)

// SpotHandler handles the spot directory REST endpoints.
type SpotHandler struct {
	uc spots.SpotUC
}

// NewSpotHandler creates a new spot HTTP handler
func NewSpotHandler(uc spots.SpotUC) *SpotHandler {
	return &SpotHandler{uc: uc}
}

// CreateSpot handles POST /v1/spots
func (h *SpotHandler) CreateSpot(c echo.Context) error {
	var spot models.Spot
	if err := c.Bind(&spot); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	created, err := h.uc.CreateSpot(c.Request().Context(), &spot)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Spot created", created)
}

// GetSpot handles GET /v1/spots/:id
func (h *SpotHandler) GetSpot(c echo.Context) error {
	spotID := c.Param("id")
	if spotID == "" {
		return utils.BadRequestResponse(c, "spot id is required")
	}

	spot, err := h.uc.GetSpot(c.Request().Context(), spotID)
	if err != nil {
		if errors.Is(err, spots.ErrSpotNotFound) {
			return utils.NotFoundResponse(c, "Spot not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get spot")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", spot)
}

// ListSpots handles GET /v1/spots
func (h *SpotHandler) ListSpots(c echo.Context) error {
	result, err := h.uc.ListSpots(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list spots")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", result)
}

// FindNearby handles GET /v1/spots/nearby?lat=&lng=&radius_km=
func (h *SpotHandler) FindNearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	radiusKm := 0.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm < 0 {
			return utils.BadRequestResponse(c, "Invalid radius")
		}
	}

	result, err := h.uc.FindNearbySpots(c.Request().Context(), lat, lng, radiusKm)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to find nearby spots")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", result)
}
