package sim

import (
	"testing"
	"time"

	"github.com/GodfreyDev/ChatGame/internal/items"
	"github.com/GodfreyDev/ChatGame/internal/state"
)

func TestAdvanceEnemiesWallRejectionKeepsPosition(t *testing.T) {
	w := newTestWorld()
	enemy := addEnemy(w, "e1", 70, openY)
	enemy.Blackboard = state.Blackboard{
		Action:  state.AIActionMove,
		Timer:   5,
		Heading: state.DirectionLeft,
	}

	// A tenth of a second at speed 120 pushes the left edge into the border
	// wall column, so the whole move must be discarded.
	w.AdvanceEnemies(time.Now(), 0.1)

	if enemy.X != 70 || enemy.Y != openY {
		t.Fatalf("expected position unchanged on rejection, got (%v, %v)", enemy.X, enemy.Y)
	}
	if enemy.FrameIndex != 1 {
		t.Fatalf("expected animation to advance despite rejection, got frame %d", enemy.FrameIndex)
	}
	if enemy.Blackboard.Timer >= 5 {
		t.Fatalf("expected the action timer to burn down, got %v", enemy.Blackboard.Timer)
	}
}

func TestAdvanceEnemiesMovesOnOpenGround(t *testing.T) {
	w := newTestWorld()
	enemy := addEnemy(w, "e1", openX, openY)
	enemy.Blackboard = state.Blackboard{
		Action:  state.AIActionMove,
		Timer:   5,
		Heading: state.DirectionRight,
	}

	w.AdvanceEnemies(time.Now(), 0.1)

	if enemy.X <= openX {
		t.Fatalf("expected movement to the right, got x=%v", enemy.X)
	}
	if enemy.Y != openY {
		t.Fatalf("expected no vertical drift, got y=%v", enemy.Y)
	}
}

func TestAdvanceEnemiesMeleeHitsAndCoolsDown(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, "p1", openX+30, openY)
	enemy := addEnemy(w, "e1", openX, openY)

	now := time.Now()
	result := w.AdvanceEnemies(now, 1.0/30)

	if len(result.Attacks) != 1 {
		t.Fatalf("expected one melee hit, got %d", len(result.Attacks))
	}
	attack := result.Attacks[0]
	if attack.EnemyID != "e1" || attack.TargetID != "p1" {
		t.Fatalf("unexpected attack pairing %+v", attack)
	}
	if attack.Damage != w.aiConfig.AttackDamage {
		t.Fatalf("expected %d damage, got %d", w.aiConfig.AttackDamage, attack.Damage)
	}
	if player.Health != playerMaxHealth-w.aiConfig.AttackDamage {
		t.Fatalf("expected health %d, got %d", playerMaxHealth-w.aiConfig.AttackDamage, player.Health)
	}
	if !enemy.LastAttack.Equal(now) {
		t.Fatalf("expected the cooldown clock to reset")
	}

	// Still inside the cooldown window.
	result = w.AdvanceEnemies(now.Add(500*time.Millisecond), 1.0/30)
	if len(result.Attacks) != 0 {
		t.Fatalf("expected no hit inside the cooldown, got %d", len(result.Attacks))
	}

	// Cooldown elapsed.
	result = w.AdvanceEnemies(now.Add(time.Second), 1.0/30)
	if len(result.Attacks) != 1 {
		t.Fatalf("expected a hit once the cooldown elapsed, got %d", len(result.Attacks))
	}
}

func TestAdvanceEnemiesMeleeIgnoresSafeZones(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, "p1", safeX, safeY)
	addEnemy(w, "e1", safeX+30, safeY)

	result := w.AdvanceEnemies(time.Now(), 1.0/30)

	if len(result.Attacks) != 1 {
		t.Fatalf("expected enemy melee to bypass safe zones, got %d attacks", len(result.Attacks))
	}
	if player.Health != playerMaxHealth-w.aiConfig.AttackDamage {
		t.Fatalf("expected damage inside the safe zone, got health %d", player.Health)
	}
}

func TestAdvanceEnemiesMeleeRespectsShield(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, "p1", openX+30, openY)
	player.Inventory = append(player.Inventory, items.NewShield(5))
	addEnemy(w, "e1", openX, openY)

	result := w.AdvanceEnemies(time.Now(), 1.0/30)

	if len(result.Attacks) != 1 {
		t.Fatalf("expected one melee hit, got %d", len(result.Attacks))
	}
	if result.Attacks[0].Absorbed != 5 {
		t.Fatalf("expected 5 absorbed, got %d", result.Attacks[0].Absorbed)
	}
	if player.Health != playerMaxHealth-5 {
		t.Fatalf("expected health %d, got %d", playerMaxHealth-5, player.Health)
	}
}

func TestAdvanceEnemiesMeleeKillRemovesPlayer(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, "p1", openX+30, openY)
	player.Health = 5
	addEnemy(w, "e1", openX, openY)

	result := w.AdvanceEnemies(time.Now(), 1.0/30)

	if len(result.Attacks) != 1 || !result.Attacks[0].Killed {
		t.Fatalf("expected a lethal hit, got %+v", result.Attacks)
	}
	if _, ok := w.Player("p1"); ok {
		t.Fatalf("expected the dead player removed from the store")
	}
}

func TestAdvanceEnemiesMeleeKillDissolvesInboundOffers(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, "p1", openX+30, openY)
	player.Health = 5
	player.Inventory = append(player.Inventory, items.NewPotion(25))
	bystander := addPlayer(w, "p2", openX+400, openY)
	bystander.Inventory = append(bystander.Inventory, items.NewSword(15))
	addEnemy(w, "e1", openX, openY)

	if _, reason := w.ProposeTrade("p2", "p1", 0, 0); reason != "" {
		t.Fatalf("unexpected proposal failure: %s", reason)
	}

	result := w.AdvanceEnemies(time.Now(), 1.0/30)

	if len(result.Attacks) == 0 || !result.Attacks[0].Killed {
		t.Fatalf("expected a lethal hit, got %+v", result.Attacks)
	}
	if bystander.PendingTrade != nil {
		t.Fatalf("expected the offer to the dead player dissolved, got %+v", bystander.PendingTrade)
	}
}

func TestAdvanceEnemiesReportsFullSnapshot(t *testing.T) {
	w := newTestWorld()
	addEnemy(w, "b", openX, openY)
	addEnemy(w, "a", openX+200, openY)

	result := w.AdvanceEnemies(time.Now(), 1.0/30)

	if len(result.Enemies) != 2 {
		t.Fatalf("expected every enemy in the tick snapshot, got %d", len(result.Enemies))
	}
	if result.Enemies[0].ID != "a" || result.Enemies[1].ID != "b" {
		t.Fatalf("expected id-ordered snapshot, got %s %s", result.Enemies[0].ID, result.Enemies[1].ID)
	}
}
