package lifecycle

import (
	"context"

	"github.com/GodfreyDev/ChatGame/logging"
)

const (
	// EventConnect is emitted when a connection spawns a player.
	EventConnect logging.EventType = "lifecycle.connect"
	// EventDisconnect is emitted when a player leaves the world.
	EventDisconnect logging.EventType = "lifecycle.disconnect"
	// EventSpawn is emitted when world entities are placed at startup.
	EventSpawn logging.EventType = "lifecycle.spawn"
)

// ConnectPayload records the spawn point handed to a new player.
type ConnectPayload struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// DisconnectPayload records why the connection went away.
type DisconnectPayload struct {
	Reason string `json:"reason,omitempty"`
}

// SpawnPayload summarizes world population at startup.
type SpawnPayload struct {
	Enemies int `json:"enemies"`
	Items   int `json:"items"`
}

// Connect publishes a lifecycle.connect event.
func Connect(ctx context.Context, pub logging.Publisher, tick uint64, player logging.EntityRef, payload ConnectPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventConnect,
		Tick:     tick,
		Actor:    player,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGameplay,
		Payload:  payload,
	})
}

// Disconnect publishes a lifecycle.disconnect event.
func Disconnect(ctx context.Context, pub logging.Publisher, tick uint64, player logging.EntityRef, reason string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDisconnect,
		Tick:     tick,
		Actor:    player,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGameplay,
		Payload:  DisconnectPayload{Reason: reason},
	})
}

// Spawn publishes a lifecycle.spawn event.
func Spawn(ctx context.Context, pub logging.Publisher, payload SpawnPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventSpawn,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityInfo,
		Category: logging.CategorySystem,
		Payload:  payload,
	})
}
