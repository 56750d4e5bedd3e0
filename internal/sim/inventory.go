package sim

import (
	"github.com/GodfreyDev/ChatGame/internal/items"
	"github.com/GodfreyDev/ChatGame/internal/state"
)

// PickupItem atomically moves a ground item into the requesting player's
// inventory, appended in acquisition order. A stale item or player id is a
// silent no-op.
func (w *World) PickupItem(playerID, itemID string) (items.Item, bool) {
	player, ok := w.players[playerID]
	if !ok {
		return items.Item{}, false
	}
	ground, ok := w.ground[itemID]
	if !ok {
		return items.Item{}, false
	}
	delete(w.ground, itemID)
	player.Inventory = append(player.Inventory, ground.Item)
	return ground.Item, true
}

// EquipItem points the player's equipped reference at an inventory slot.
// Passing state.NoEquippedItem clears it. An invalid slot is rejected.
func (w *World) EquipItem(playerID string, index int) (items.Item, bool) {
	player, ok := w.players[playerID]
	if !ok {
		return items.Item{}, false
	}
	if index == state.NoEquippedItem {
		player.EquippedIndex = state.NoEquippedItem
		return items.Item{}, true
	}
	item, ok := player.ItemAt(index)
	if !ok {
		return items.Item{}, false
	}
	player.EquippedIndex = index
	return item, true
}

// UsePotion consumes a potion from the inventory, healing the player clamped
// to max health. The slot must hold a potion.
func (w *World) UsePotion(playerID string, index int) (healed int, health int, ok bool) {
	player, okPlayer := w.players[playerID]
	if !okPlayer {
		return 0, 0, false
	}
	item, okItem := player.ItemAt(index)
	if !okItem || item.Type != items.KindPotion {
		return 0, player.Health, false
	}
	before := player.Health
	player.ApplyHealthDelta(item.Healing)
	player.RemoveItemAt(index)
	return player.Health - before, player.Health, true
}
