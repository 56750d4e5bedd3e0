package ws

import (
	nethttp "net/http"

	"github.com/gorilla/websocket"

	server "github.com/GodfreyDev/ChatGame"
	"github.com/GodfreyDev/ChatGame/internal/telemetry"
)

// Handler upgrades HTTP requests and runs websocket sessions against the hub.
type Handler struct {
	hub      *server.Hub
	logger   telemetry.Logger
	upgrader websocket.Upgrader
}

// NewHandler constructs a websocket session handler for the given hub.
func NewHandler(hub *server.Hub, logger telemetry.Logger) *Handler {
	if logger == nil {
		logger = telemetry.NopLogger()
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *nethttp.Request) bool {
			return true
		},
	}

	return &Handler{
		hub:      hub,
		logger:   logger,
		upgrader: upgrader,
	}
}

// Handle upgrades the request and hands the connection to a session. The
// player id is assigned server-side on connect.
func (h *Handler) Handle(w nethttp.ResponseWriter, r *nethttp.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("upgrade failed: %v", err)
		return
	}

	session := newSession(h.hub, conn, h.logger)
	session.run()
}
