package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"courier/config"
	"courier/internal/domain/service"
	"courier/internal/infra/realtime"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// WSHandler upgrades authenticated clients onto the realtime hub.
type WSHandler struct {
	rooms          service.SubscriptionRegistry
	tokenSvc       service.TokenService
	sendBufferSize int
	logger         *slog.Logger
	upgrader       websocket.Upgrader
}

// NewWSHandler is the constructor for WSHandler, injected by Fx.
func NewWSHandler(rooms service.SubscriptionRegistry, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *WSHandler {
	sendBufferSize := 0
	if cfg.Realtime != nil {
		sendBufferSize = cfg.Realtime.SendBufferSize
	}

	return &WSHandler{
		rooms:          rooms,
		tokenSvc:       tokenSvc,
		sendBufferSize: sendBufferSize,
		logger:         logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Cross-origin policy is enforced by the CORS middleware on the
			// rest of the API; browser WebSocket clients cannot set headers.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Serve authenticates the client and hands the connection to a session.
// Browsers cannot set an Authorization header on a WebSocket dial, so the
// token may also arrive as a query parameter.
func (h *WSHandler) Serve(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		authHeader := c.Request().Header.Get("Authorization")
		token = strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			token = ""
		}
	}
	if token == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing access token"})
	}

	claims, err := h.tokenSvc.ValidateAccessToken(token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the error response.
		return nil
	}

	sessionID := realtime.SessionID(claims.UserID, uuid.NewString())
	session := realtime.NewSession(sessionID, claims.UserID, claims.Role, conn, h.rooms, h.sendBufferSize, h.logger)

	h.logger.Debug("WebSocket session opened",
		slog.String("session", sessionID),
		slog.Uint64("userID", uint64(claims.UserID)),
	)

	session.Run()

	return nil
}
