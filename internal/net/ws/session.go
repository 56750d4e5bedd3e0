package ws

import (
	"time"

	"github.com/gorilla/websocket"

	server "github.com/GodfreyDev/ChatGame"
	"github.com/GodfreyDev/ChatGame/internal/net/proto"
	"github.com/GodfreyDev/ChatGame/internal/telemetry"
)

const (
	pongWait       = 60 * time.Second
	pingInterval   = 25 * time.Second
	maxMessageSize = 8 << 10
)

// session pumps inbound frames from one connection into the hub.
type session struct {
	hub    *server.Hub
	conn   *websocket.Conn
	logger telemetry.Logger
}

func newSession(hub *server.Hub, conn *websocket.Conn, logger telemetry.Logger) *session {
	return &session{hub: hub, conn: conn, logger: logger}
}

// run registers the player, starts the liveness pinger, and reads until the
// connection dies. Returning tears the player down.
func (s *session) run() {
	playerID := s.hub.Connect(s.conn)

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	stopPing := make(chan struct{})
	defer close(stopPing)
	go s.pingLoop(playerID, stopPing)

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			s.hub.Disconnect(playerID, "connection closed")
			return
		}

		msg, err := proto.Decode(payload)
		if err != nil {
			s.logger.Printf("discarding malformed message from %s: %v", playerID, err)
			continue
		}

		s.hub.Dispatch(playerID, msg)
	}
}

func (s *session) pingLoop(playerID string, stop <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := s.hub.Ping(playerID); err != nil {
				return
			}
		}
	}
}
