package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/surfsup-app/surfsup/internal/pkg/middleware"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	"github.com/surfsup-app/surfsup/services/spots"
	httphandler "github.com/surfsup-app/surfsup/services/spots/handler/http"
)

// Handler aggregates the spot directory entry points.
type Handler struct {
	httpHandler *httphandler.SpotHandler
	cfg         *models.Config
}

// NewHandler creates the spot service handler
func NewHandler(uc spots.SpotUC, cfg *models.Config) *Handler {
	return &Handler{
		httpHandler: httphandler.NewSpotHandler(uc),
		cfg:         cfg,
	}
}

// RegisterRoutes registers the service routes on the echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuthMiddleware(h.cfg.JWT))

	v1.GET("/spots", h.httpHandler.ListSpots)
	v1.GET("/spots/nearby", h.httpHandler.FindNearby)
	v1.GET("/spots/:id", h.httpHandler.GetSpot)

	admin := v1.Group("/admin")
	admin.Use(middleware.RequireRole("admin"))
	admin.POST("/spots", h.httpHandler.CreateSpot)
}
