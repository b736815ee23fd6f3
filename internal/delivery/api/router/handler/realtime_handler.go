package handler

import (
	"log/slog"
	"net/http"

	"pawtrack/internal/delivery/api/middleware"
	"pawtrack/internal/delivery/api/response"
	"pawtrack/internal/infra/realtime"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	Hub            *realtime.Hub
	AuthMiddleware *middleware.AuthMiddleware
	Logger         *slog.Logger
}

// RealtimeHandler upgrades authenticated sessions to websockets.
type RealtimeHandler struct {
	hub      *realtime.Hub
	auth     *middleware.AuthMiddleware
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	return &RealtimeHandler{
		hub:  params.Hub,
		auth: params.AuthMiddleware,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Sessions authenticate by token, not by origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: params.Logger,
	}
}

// Connect authenticates the token from ?token= or the Authorization header
// and hands the upgraded connection to the hub.
func (h *RealtimeHandler) Connect(c echo.Context) error {
	tokenString := c.QueryParam("token")
	if tokenString == "" {
		var ok bool
		if tokenString, ok = middleware.BearerToken(c.Request()); !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		}
	}

	userID, err := h.auth.Verify(tokenString)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the handshake failure.
		h.logger.Debug("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}

	if err := h.hub.Serve(conn, userID); err != nil {
		h.logger.Warn("Websocket session rejected", slog.String("user_id", userID.String()), slog.Any("error", err))
	}

	return nil
}
