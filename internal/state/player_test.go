package state

import (
	"testing"
	"time"

	"github.com/GodfreyDev/ChatGame/internal/items"
)

func TestApplyHealthDeltaClamps(t *testing.T) {
	s := &ActorState{Actor: Actor{Health: 10, MaxHealth: 100}}

	if changed := s.ApplyHealthDelta(-50); !changed {
		t.Fatalf("expected a change")
	}
	if s.Health != 0 {
		t.Fatalf("expected health clamped at 0, got %d", s.Health)
	}

	s.ApplyHealthDelta(500)
	if s.Health != 100 {
		t.Fatalf("expected health clamped at max, got %d", s.Health)
	}

	if changed := s.ApplyHealthDelta(1); changed {
		t.Fatalf("expected no change at the ceiling")
	}
}

func TestRemoveItemAtFixesEquippedIndex(t *testing.T) {
	player := NewPlayerState("p1", "tester", 0, 0, 100, time.Time{})
	sword := items.NewSword(15)
	potion := items.NewPotion(25)
	shield := items.NewShield(5)
	player.Inventory = append(player.Inventory, sword, potion, shield)

	player.EquippedIndex = 2
	player.RemoveItemAt(0)
	if player.EquippedIndex != 1 {
		t.Fatalf("expected equipped index shifted down, got %d", player.EquippedIndex)
	}
	if player.Inventory[0].ID != potion.ID {
		t.Fatalf("expected acquisition order preserved")
	}

	player.RemoveItemAt(1)
	if player.EquippedIndex != NoEquippedItem {
		t.Fatalf("expected equipped reference cleared when its slot vanished, got %d", player.EquippedIndex)
	}

	if _, ok := player.RemoveItemAt(5); ok {
		t.Fatalf("expected an out-of-range removal to fail")
	}
}

func TestFirstShieldFindsUnequippedShield(t *testing.T) {
	player := NewPlayerState("p1", "tester", 0, 0, 100, time.Time{})

	if _, ok := player.FirstShield(); ok {
		t.Fatalf("expected no shield in an empty inventory")
	}

	shield := items.NewShield(5)
	player.Inventory = append(player.Inventory, items.NewSword(15), shield)

	found, ok := player.FirstShield()
	if !ok || found.ID != shield.ID {
		t.Fatalf("expected the shield found regardless of equipment")
	}
}

func TestSnapshotDetachesInventory(t *testing.T) {
	player := NewPlayerState("p1", "tester", 3, 4, 100, time.Time{})
	player.Inventory = append(player.Inventory, items.NewSword(15))

	snapshot := player.Snapshot()
	snapshot.Inventory[0].Damage = 999

	if player.Inventory[0].Damage == 999 {
		t.Fatalf("expected snapshot mutation to leave the player untouched")
	}
	if snapshot.Direction != DefaultDirection {
		t.Fatalf("expected the default facing in the snapshot, got %q", snapshot.Direction)
	}
}
