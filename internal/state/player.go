package state

import (
	"time"

	"github.com/GodfreyDev/ChatGame/internal/items"
)

// Player mirrors the player state broadcast to clients.
type Player struct {
	Actor
	Name          string       `json:"name"`
	FrameIndex    int          `json:"frameIndex"`
	Inventory     []items.Item `json:"inventory"`
	EquippedIndex int          `json:"equippedIndex"`
	Copper        int          `json:"copper"`
}

// NoEquippedItem marks an empty equipped-item reference.
const NoEquippedItem = -1

// PendingTrade is the single outstanding swap offer recorded on its sender.
type PendingTrade struct {
	SenderID       string
	RecipientID    string
	OfferedIndex   int
	RequestedIndex int
}

// PlayerState wraps the wire-visible player with server-side bookkeeping.
// Mutation happens only under the hub's world lock.
type PlayerState struct {
	ActorState
	Name          string
	FrameIndex    int
	Inventory     []items.Item
	EquippedIndex int
	Copper        int
	PendingTrade  *PendingTrade
	ConnectedAt   time.Time
}

// NewPlayerState creates a freshly spawned player at full health with an
// empty inventory and no currency.
func NewPlayerState(id, name string, x, y float64, maxHealth int, now time.Time) *PlayerState {
	return &PlayerState{
		ActorState: ActorState{Actor: Actor{
			ID:        id,
			X:         x,
			Y:         y,
			Direction: DefaultDirection,
			Health:    maxHealth,
			MaxHealth: maxHealth,
		}},
		Name:          name,
		Inventory:     make([]items.Item, 0, 4),
		EquippedIndex: NoEquippedItem,
		ConnectedAt:   now,
	}
}

// ItemAt resolves an inventory index, reporting whether the slot exists.
func (s *PlayerState) ItemAt(index int) (items.Item, bool) {
	if index < 0 || index >= len(s.Inventory) {
		return items.Item{}, false
	}
	return s.Inventory[index], true
}

// EquippedItem resolves the equipped reference, if any.
func (s *PlayerState) EquippedItem() (items.Item, bool) {
	return s.ItemAt(s.EquippedIndex)
}

// FirstShield finds a shield anywhere in the inventory. Defense applies
// whether or not the shield is equipped.
func (s *PlayerState) FirstShield() (items.Item, bool) {
	for _, item := range s.Inventory {
		if item.Type == items.KindShield {
			return item, true
		}
	}
	return items.Item{}, false
}

// RemoveItemAt deletes an inventory slot, preserving acquisition order and
// fixing up the equipped reference.
func (s *PlayerState) RemoveItemAt(index int) (items.Item, bool) {
	item, ok := s.ItemAt(index)
	if !ok {
		return items.Item{}, false
	}
	s.Inventory = append(s.Inventory[:index], s.Inventory[index+1:]...)
	switch {
	case s.EquippedIndex == index:
		s.EquippedIndex = NoEquippedItem
	case s.EquippedIndex > index:
		s.EquippedIndex--
	}
	return item, true
}

// Snapshot returns the wire-visible player record.
func (s *PlayerState) Snapshot() Player {
	inventory := make([]items.Item, len(s.Inventory))
	copy(inventory, s.Inventory)
	direction := s.Direction
	if direction == "" {
		direction = DefaultDirection
	}
	actor := s.Actor
	actor.Direction = direction
	return Player{
		Actor:         actor,
		Name:          s.Name,
		FrameIndex:    s.FrameIndex,
		Inventory:     inventory,
		EquippedIndex: s.EquippedIndex,
		Copper:        s.Copper,
	}
}
