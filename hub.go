// Package server owns the live game world: connection lifecycle, inbound
// event dispatch, and the fixed-cadence simulation loop. All world mutation
// funnels through the hub's single mutex, one discrete operation at a time.
package server

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/GodfreyDev/ChatGame/internal/ai"
	"github.com/GodfreyDev/ChatGame/internal/net/proto"
	"github.com/GodfreyDev/ChatGame/internal/sim"
	"github.com/GodfreyDev/ChatGame/internal/state"
	"github.com/GodfreyDev/ChatGame/internal/telemetry"
	worldpkg "github.com/GodfreyDev/ChatGame/internal/world"
	"github.com/GodfreyDev/ChatGame/logging"
	lifecyclelog "github.com/GodfreyDev/ChatGame/logging/lifecycle"
)

const writeWait = 10 * time.Second

// HubConfig tunes the world population and simulation cadence.
type HubConfig struct {
	TickRate         int
	EnemyCount       int
	ItemCount        int
	ValidateMovement bool
	AIConfig         ai.Config
	Seed             int64
	Logger           telemetry.Logger
	Publisher        logging.Publisher
}

// DefaultHubConfig returns the standard tuning: 30 Hz ticks, movement
// validation on.
func DefaultHubConfig() HubConfig {
	return HubConfig{
		TickRate:         30,
		EnemyCount:       12,
		ItemCount:        16,
		ValidateMovement: true,
		AIConfig:         ai.DefaultConfig(),
	}
}

// subscriber serializes writes to one websocket connection.
type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) send(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

func (s *subscriber) close(reason string) {
	message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
	s.mu.Lock()
	s.conn.WriteMessage(websocket.CloseMessage, message)
	s.mu.Unlock()
	s.conn.Close()
}

// Hub owns the world aggregate and every live connection.
type Hub struct {
	mu          sync.Mutex
	world       *sim.World
	subscribers map[string]*subscriber

	cfg       HubConfig
	logger    telemetry.Logger
	publisher logging.Publisher
	tick      atomic.Uint64
	startedAt time.Time
}

// NewHub generates the world map, populates enemies and ground items, and
// returns a hub ready to accept connections.
func NewHub(cfg HubConfig) *Hub {
	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.LoggerFunc(func(string, ...any) {})
	}
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = logging.NopPublisher()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 30
	}
	if cfg.AIConfig == (ai.Config{}) {
		cfg.AIConfig = ai.DefaultConfig()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world := sim.NewWorld(worldpkg.Generate(), rand.New(rand.NewSource(seed)), cfg.AIConfig)
	world.SpawnEnemies(cfg.EnemyCount)
	world.SpawnGroundItems(cfg.ItemCount)

	hub := &Hub{
		world:       world,
		subscribers: make(map[string]*subscriber),
		cfg:         cfg,
		logger:      logger,
		publisher:   publisher,
		startedAt:   time.Now(),
	}
	lifecyclelog.Spawn(context.Background(), publisher, lifecyclelog.SpawnPayload{
		Enemies: cfg.EnemyCount,
		Items:   cfg.ItemCount,
	})
	return hub
}

// Connect spawns a player for the new connection and returns its id. The new
// client receives the full world snapshot; everyone else learns of the
// arrival.
func (h *Hub) Connect(conn *websocket.Conn) string {
	id := uuid.NewString()
	now := time.Now()

	h.mu.Lock()
	player := h.world.SpawnPlayer(id, now)
	snapshot := player.Snapshot()
	players := h.world.PlayersSnapshot()
	groundItems := h.world.GroundItemsSnapshot()
	enemies := h.world.EnemiesSnapshot()
	sub := &subscriber{conn: conn}
	h.subscribers[id] = sub
	h.mu.Unlock()

	h.sendTo(id, proto.WorldInfoMessage{
		Type:       proto.TypeWorldInfo,
		GridWidth:  worldpkg.GridWidth,
		GridHeight: worldpkg.GridHeight,
		TileSize:   worldpkg.TileSize,
		SafeZones:  h.world.Map().SafeZones(),
	})
	h.sendTo(id, proto.CurrentPlayersMessage{Type: proto.TypeCurrentPlayers, SelfID: id, Players: players})
	h.sendTo(id, proto.CurrentItemsMessage{Type: proto.TypeCurrentItems, Items: groundItems})
	h.sendTo(id, proto.UpdateEnemiesMessage{Type: proto.TypeUpdateEnemies, Enemies: enemies})
	h.broadcastExcept(id, proto.NewPlayerMessage{Type: proto.TypeNewPlayer, Player: snapshot})

	lifecyclelog.Connect(context.Background(), h.publisher, h.tick.Load(),
		logging.EntityRef{ID: id, Kind: logging.EntityKindPlayer},
		lifecyclelog.ConnectPayload{Name: snapshot.Name, X: snapshot.X, Y: snapshot.Y})
	h.logger.Printf("player %s (%s) connected", id, snapshot.Name)
	return id
}

// Disconnect removes the player and announces the departure. Idempotent:
// a second call for the same id is a no-op.
func (h *Hub) Disconnect(playerID, reason string) bool {
	h.mu.Lock()
	sub, hadSub := h.subscribers[playerID]
	delete(h.subscribers, playerID)
	_, hadPlayer := h.world.RemovePlayer(playerID)
	h.mu.Unlock()

	if hadSub {
		sub.conn.Close()
	}
	if !hadPlayer {
		return false
	}

	h.broadcast(proto.PlayerDisconnectedMessage{Type: proto.TypePlayerDisconnected, ID: playerID})
	lifecyclelog.Disconnect(context.Background(), h.publisher, h.tick.Load(),
		logging.EntityRef{ID: playerID, Kind: logging.EntityKindPlayer}, reason)
	h.logger.Printf("player %s disconnected (%s)", playerID, reason)
	return true
}

// forceDisconnect tears a dead player's connection down after the death
// notice has gone out. The player record is already gone from the store.
func (h *Hub) forceDisconnect(playerID, reason string) {
	h.mu.Lock()
	sub, ok := h.subscribers[playerID]
	delete(h.subscribers, playerID)
	h.mu.Unlock()
	if ok {
		sub.close(reason)
	}
}

// PlayerState mirrors the player's authoritative record for diagnostics and
// tests.
func (h *Hub) PlayerState(id string) (state.Player, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	player, ok := h.world.Player(id)
	if !ok {
		return state.Player{}, false
	}
	return player.Snapshot(), true
}

// World exposes the aggregate for in-process tests. Production callers go
// through the event handlers.
func (h *Hub) World() *sim.World {
	return h.world
}

// Lock acquires the world lock for test setups that reach into the aggregate.
func (h *Hub) Lock() func() {
	h.mu.Lock()
	return h.mu.Unlock
}

// TickRate reports the configured simulation cadence.
func (h *Hub) TickRate() int {
	return h.cfg.TickRate
}

// DiagnosticsSnapshot summarizes hub state for the diagnostics endpoint.
type DiagnosticsSnapshot struct {
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Tick          uint64 `json:"tick"`
	TickRate      int    `json:"tickRate"`
	Players       int    `json:"players"`
	Enemies       int    `json:"enemies"`
	GroundItems   int    `json:"groundItems"`
}

// Diagnostics reports current entity counts and tick progress.
func (h *Hub) Diagnostics() DiagnosticsSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return DiagnosticsSnapshot{
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		Tick:          h.tick.Load(),
		TickRate:      h.cfg.TickRate,
		Players:       h.world.PlayerCount(),
		Enemies:       h.world.EnemyCount(),
		GroundItems:   h.world.GroundItemCount(),
	}
}

// sendTo marshals and delivers one message to one connection. Write failures
// funnel into the disconnect path.
func (h *Hub) sendTo(playerID string, msg any) {
	h.mu.Lock()
	sub, ok := h.subscribers[playerID]
	h.mu.Unlock()
	if !ok {
		return
	}
	data, err := proto.Encode(msg)
	if err != nil {
		h.logger.Printf("failed to marshal message for %s: %v", playerID, err)
		return
	}
	if err := sub.send(data); err != nil {
		h.logger.Printf("failed to send to %s: %v", playerID, err)
		h.Disconnect(playerID, "write failure")
	}
}

// Ping writes a ping control frame to one connection, sharing the
// subscriber's write mutex with regular sends.
func (h *Hub) Ping(playerID string) error {
	h.mu.Lock()
	sub, ok := h.subscribers[playerID]
	h.mu.Unlock()
	if !ok {
		return websocket.ErrCloseSent
	}
	sub.mu.Lock()
	defer sub.mu.Unlock()
	sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return sub.conn.WriteMessage(websocket.PingMessage, nil)
}

func (h *Hub) broadcast(msg any) {
	h.broadcastExcept("", msg)
}

// broadcastExcept fans a message out to every connection except the named
// one. Fan-out runs outside the world lock against a subscriber snapshot, so
// a slow socket never stalls the simulation.
func (h *Hub) broadcastExcept(excludeID string, msg any) {
	data, err := proto.Encode(msg)
	if err != nil {
		h.logger.Printf("failed to marshal broadcast: %v", err)
		return
	}

	h.mu.Lock()
	subs := make(map[string]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		if id == excludeID {
			continue
		}
		subs[id] = sub
	}
	h.mu.Unlock()

	for id, sub := range subs {
		if err := sub.send(data); err != nil {
			h.logger.Printf("failed to send to %s: %v", id, err)
			h.Disconnect(id, "write failure")
		}
	}
}
