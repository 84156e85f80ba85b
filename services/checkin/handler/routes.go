package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/surfsup-app/surfsup/internal/pkg/middleware"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	natspkg "github.com/surfsup-app/surfsup/internal/pkg/nats"
	pkgws "github.com/surfsup-app/surfsup/internal/pkg/websocket"
	"github.com/surfsup-app/surfsup/services/checkin"
	httphandler "github.com/surfsup-app/surfsup/services/checkin/handler/http"
	wshandler "github.com/surfsup-app/surfsup/services/checkin/handler/websocket"
)

// Handler aggregates the HTTP, WebSocket and NATS entry points of the
// check-in service.
type Handler struct {
	httpHandler *httphandler.CheckInHandler
	wsManager   *wshandler.WebSocketManager
	natsClient  *natspkg.Client
	cfg         *models.Config
}

// NewHandler creates the check-in service handler and starts its NATS
// consumers.
func NewHandler(uc checkin.CheckInUC, natsClient *natspkg.Client, cfg *models.Config) (*Handler, error) {
	wsManager := wshandler.NewWebSocketManager(uc, pkgws.NewManager(cfg.JWT))

	h := &Handler{
		httpHandler: httphandler.NewCheckInHandler(uc),
		wsManager:   wsManager,
		natsClient:  natsClient,
		cfg:         cfg,
	}

	if err := h.initNATSConsumers(); err != nil {
		return nil, err
	}

	return h, nil
}

// RegisterRoutes registers the service routes on the echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuthMiddleware(h.cfg.JWT))

	v1.POST("/checkins", h.httpHandler.CreateCheckIn)
	v1.POST("/checkins/switch", h.httpHandler.SwitchSpot)
	v1.DELETE("/checkins/:id", h.httpHandler.CheckOut)

	v1.GET("/spots/:id/count", h.httpHandler.GetSpotCount)
	v1.GET("/users/:id/checkins/active", h.httpHandler.GetActiveCheckIn)
	v1.GET("/users/:id/checkins", h.httpHandler.GetUserHistory)

	admin := v1.Group("/admin")
	admin.Use(middleware.RequireRole("admin"))
	admin.POST("/checkins/reset", h.httpHandler.ResetAll)

	// WebSocket endpoint does its own JWT handshake.
	e.GET("/ws", h.wsManager.HandleWebSocket)
}
