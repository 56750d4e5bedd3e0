package economy

import (
	"context"

	"github.com/GodfreyDev/ChatGame/logging"
)

const (
	// EventReward is emitted when a kill grants copper and a reward code.
	EventReward logging.EventType = "economy.reward"
	// EventPickup is emitted when a ground item moves into an inventory.
	EventPickup logging.EventType = "economy.pickup"
)

// RewardPayload records the copper granted for a kill. The reward code itself
// is delivered only to the killer and deliberately kept out of the log stream.
type RewardPayload struct {
	Copper int `json:"copper"`
}

// PickupPayload names the item that changed hands.
type PickupPayload struct {
	ItemType string `json:"itemType"`
}

// Reward publishes an economy.reward event.
func Reward(ctx context.Context, pub logging.Publisher, tick uint64, player logging.EntityRef, copper int) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventReward,
		Tick:     tick,
		Actor:    player,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryEconomy,
		Payload:  RewardPayload{Copper: copper},
	})
}

// Pickup publishes an economy.pickup event.
func Pickup(ctx context.Context, pub logging.Publisher, tick uint64, player, item logging.EntityRef, itemType string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventPickup,
		Tick:     tick,
		Actor:    player,
		Targets:  []logging.EntityRef{item},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryEconomy,
		Payload:  PickupPayload{ItemType: itemType},
	})
}
