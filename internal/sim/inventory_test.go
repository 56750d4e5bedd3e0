package sim

import (
	"testing"

	"github.com/GodfreyDev/ChatGame/internal/items"
	"github.com/GodfreyDev/ChatGame/internal/state"
)

func TestPickupItemMovesItemOffTheGround(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, "p1", openX, openY)
	sword := items.NewSword(15)
	w.AddGroundItem(items.GroundItem{Item: sword, X: openX, Y: openY})

	picked, ok := w.PickupItem("p1", sword.ID)

	if !ok {
		t.Fatalf("expected a successful pickup")
	}
	if picked.ID != sword.ID {
		t.Fatalf("expected the picked item returned, got %q", picked.ID)
	}
	if w.GroundItemCount() != 0 {
		t.Fatalf("expected the ground emptied, got %d items", w.GroundItemCount())
	}
	if len(player.Inventory) != 1 || player.Inventory[0].ID != sword.ID {
		t.Fatalf("expected the item appended to the inventory")
	}
}

func TestPickupItemPreservesAcquisitionOrder(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, "p1", openX, openY)
	first := items.NewSword(15)
	second := items.NewPotion(25)
	w.AddGroundItem(items.GroundItem{Item: first, X: openX, Y: openY})
	w.AddGroundItem(items.GroundItem{Item: second, X: openX, Y: openY})

	w.PickupItem("p1", first.ID)
	w.PickupItem("p1", second.ID)

	if player.Inventory[0].ID != first.ID || player.Inventory[1].ID != second.ID {
		t.Fatalf("expected inventory in acquisition order")
	}
}

func TestPickupItemStaleIDIsSilent(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, "p1", openX, openY)
	sword := items.NewSword(15)
	w.AddGroundItem(items.GroundItem{Item: sword, X: openX, Y: openY})

	w.PickupItem("p1", sword.ID)
	if _, ok := w.PickupItem("p1", sword.ID); ok {
		t.Fatalf("expected the second pickup of the same id to fail")
	}
	if len(player.Inventory) != 1 {
		t.Fatalf("expected exactly one copy in the inventory, got %d", len(player.Inventory))
	}
}

func TestEquipItemValidatesSlot(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, "p1", openX, openY)
	sword := items.NewSword(15)
	player.Inventory = append(player.Inventory, sword)

	if _, ok := w.EquipItem("p1", 3); ok {
		t.Fatalf("expected an invalid slot to be rejected")
	}
	if player.EquippedIndex != state.NoEquippedItem {
		t.Fatalf("expected equipped reference unchanged, got %d", player.EquippedIndex)
	}

	item, ok := w.EquipItem("p1", 0)
	if !ok || item.ID != sword.ID {
		t.Fatalf("expected slot 0 equipped")
	}
	if player.EquippedIndex != 0 {
		t.Fatalf("expected equipped index 0, got %d", player.EquippedIndex)
	}

	if _, ok := w.EquipItem("p1", state.NoEquippedItem); !ok {
		t.Fatalf("expected clearing the equipped reference to succeed")
	}
	if player.EquippedIndex != state.NoEquippedItem {
		t.Fatalf("expected cleared reference, got %d", player.EquippedIndex)
	}
}

func TestUsePotionHealsClampedAndConsumes(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, "p1", openX, openY)
	player.Health = 90
	player.Inventory = append(player.Inventory, items.NewPotion(25))

	healed, health, ok := w.UsePotion("p1", 0)

	if !ok {
		t.Fatalf("expected the potion to be consumed")
	}
	if healed != 10 || health != playerMaxHealth {
		t.Fatalf("expected healing clamped to max, got healed=%d health=%d", healed, health)
	}
	if len(player.Inventory) != 0 {
		t.Fatalf("expected the potion removed from the inventory")
	}
}

func TestUsePotionRejectsNonPotion(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, "p1", openX, openY)
	player.Health = 50
	player.Inventory = append(player.Inventory, items.NewSword(15))

	if _, _, ok := w.UsePotion("p1", 0); ok {
		t.Fatalf("expected a sword to be unusable as a potion")
	}
	if player.Health != 50 || len(player.Inventory) != 1 {
		t.Fatalf("expected no state change on rejection")
	}
}
