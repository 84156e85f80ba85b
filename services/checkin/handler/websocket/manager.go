package websocket

import (
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/surfsup-app/surfsup/internal/pkg/constants"
	"github.com/surfsup-app/surfsup/internal/pkg/logger"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	pkgws "github.com/surfsup-app/surfsup/internal/pkg/websocket"
	"github.com/surfsup-app/surfsup/services/checkin"
)

// WebSocketManager handles realtime clients for the check-in service.
type WebSocketManager struct {
	uc      checkin.CheckInUC
	manager *pkgws.Manager
}

// NewWebSocketManager creates a new WebSocket manager for the check-in service
func NewWebSocketManager(uc checkin.CheckInUC, manager *pkgws.Manager) *WebSocketManager {
	return &WebSocketManager{
		uc:      uc,
		manager: manager,
	}
}

// HandleWebSocket handles new WebSocket connections
func (m *WebSocketManager) HandleWebSocket(c echo.Context) error {
	return m.manager.HandleConnection(c, m.handleClientConnection)
}

// handleClientConnection manages the client's WebSocket connection
func (m *WebSocketManager) handleClientConnection(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	m.manager.AddClient(client)
	defer m.manager.RemoveClient(client.UserID)

	return m.messageLoop(client)
}

// messageLoop handles incoming WebSocket messages
func (m *WebSocketManager) messageLoop(client *models.WebSocketClient) error {
	for {
		_, msg, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return err
		}

		if err := m.handleMessage(client, msg); err != nil {
			logger.Warn("Error handling WebSocket message",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

// NotifyClient sends an event to a specific connected client.
func (m *WebSocketManager) NotifyClient(userID string, event string, data interface{}) {
	m.manager.NotifyClient(userID, event, data)
}

// BroadcastToSpot sends an event to every client watching a spot's feed.
func (m *WebSocketManager) BroadcastToSpot(spotID string, event string, data interface{}) {
	m.manager.BroadcastToSpot(spotID, event, data)
}

// handleMessage dispatches one incoming WebSocket message.
func (m *WebSocketManager) handleMessage(client *models.WebSocketClient, msg []byte) error {
	var wsMsg models.WSMessage
	if err := unmarshalMessage(msg, &wsMsg); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid message format")
	}

	switch wsMsg.Event {
	case constants.EventCheckInRequest:
		return m.handleCheckInRequest(client, wsMsg.Data)
	case constants.EventCheckOutRequest:
		return m.handleCheckOutRequest(client, wsMsg.Data)
	case constants.EventSpotSubscribe:
		return m.handleSpotSubscribe(client, wsMsg.Data)
	case constants.EventSpotUnsubscribe:
		return m.handleSpotUnsubscribe(client, wsMsg.Data)
	case constants.EventPing:
		return m.manager.SendMessage(client.Conn, constants.EventPong, nil)
	default:
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Unknown event type")
	}
}
