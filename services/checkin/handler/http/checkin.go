package http

import (
	"errors"
	nethttp "net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	"github.com/surfsup-app/surfsup/internal/utils"
	"github.com/surfsup-app/surfsup/services/checkin"
)

// CheckInHandler handles the check-in REST endpoints.
type CheckInHandler struct {
	uc checkin.CheckInUC
}

// NewCheckInHandler creates a new check-in HTTP handler
func NewCheckInHandler(uc checkin.CheckInUC) *CheckInHandler {
	return &CheckInHandler{uc: uc}
}

// CreateCheckIn handles POST /v1/checkins
func (h *CheckInHandler) CreateCheckIn(c echo.Context) error {
	var req models.CheckInRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	if req.UserID == "" {
		if userID, ok := c.Get("user_id").(string); ok {
			req.UserID = userID
		}
	}
	if req.UserID == "" || req.SpotID == "" {
		return utils.BadRequestResponse(c, "user_id and spot_id are required")
	}

	record, err := h.uc.CheckIn(c.Request().Context(), &req)
	if err != nil {
		if existing, ok := checkin.AsActiveElsewhere(err); ok {
			return utils.ConflictResponse(c, err.Error(), existing)
		}
		return utils.InternalServerErrorResponse(c, "Failed to check in")
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Checked in", record)
}

// SwitchSpot handles POST /v1/checkins/switch. This is the confirmed
// resolution of the 409 returned by CreateCheckIn.
func (h *CheckInHandler) SwitchSpot(c echo.Context) error {
	var req models.SwitchSpotRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	if req.UserID == "" {
		if userID, ok := c.Get("user_id").(string); ok {
			req.UserID = userID
		}
	}
	if req.UserID == "" || req.SpotID == "" {
		return utils.BadRequestResponse(c, "user_id and spot_id are required")
	}

	record, err := h.uc.SwitchSpot(c.Request().Context(), &req)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to switch spots")
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Checked in", record)
}

// CheckOut handles DELETE /v1/checkins/:id
func (h *CheckInHandler) CheckOut(c echo.Context) error {
	checkInID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid check-in ID")
	}

	if err := h.uc.CheckOut(c.Request().Context(), checkInID); err != nil {
		if errors.Is(err, checkin.ErrNotCheckedIn) {
			// Already checked out or expired; nothing was mutated.
			return utils.NotFoundResponse(c, "Check-in is no longer active")
		}
		return utils.InternalServerErrorResponse(c, "Failed to check out")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Checked out", nil)
}

// GetSpotCount handles GET /v1/spots/:id/count
func (h *CheckInHandler) GetSpotCount(c echo.Context) error {
	spotID := c.Param("id")
	if spotID == "" {
		return utils.BadRequestResponse(c, "spot id is required")
	}

	state, err := h.uc.GetSpotCount(c.Request().Context(), spotID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get surfer count")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", state)
}

// GetActiveCheckIn handles GET /v1/users/:id/checkins/active. With a
// spot_id query parameter it checks that exact spot, otherwise any spot.
func (h *CheckInHandler) GetActiveCheckIn(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "user id is required")
	}

	var record *models.CheckIn
	var err error
	if spotID := c.QueryParam("spot_id"); spotID != "" {
		record, err = h.uc.GetActiveCheckIn(c.Request().Context(), userID, spotID)
	} else {
		record, err = h.uc.GetActiveCheckInAnywhere(c.Request().Context(), userID)
	}
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get active check-in")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", record)
}

// GetUserHistory handles GET /v1/users/:id/checkins
func (h *CheckInHandler) GetUserHistory(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "user id is required")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
		limit = parsed
	}

	history, err := h.uc.GetUserHistory(c.Request().Context(), userID, limit)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get check-in history")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", history)
}

// ResetAll handles POST /v1/admin/checkins/reset. Debug/recovery endpoint.
func (h *CheckInHandler) ResetAll(c echo.Context) error {
	if err := h.uc.ResetAll(c.Request().Context()); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to reset check-ins")
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "All check-ins cleared", nil)
}
